package seed

import (
	"time"

	"github.com/bobmcallan/vibex/internal/models"
)

const placeholderAvatar = "https://placehold.co/40x40.png"

// Builtin returns the mock data the portal starts with. Event times carry no
// zone and are read in loc; team request times are UTC.
func Builtin(loc *time.Location) Data {
	if loc == nil {
		loc = time.UTC
	}
	return Data{
		TeamRequests: builtinTeamRequests(),
		Events:       builtinEvents(loc),
		Quizzes:      builtinQuizzes(),
		Leaderboard:  builtinLeaderboard(),
	}
}

func utc(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func local(s string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc)
	if err != nil {
		panic(err)
	}
	return t
}

func builtinTeamRequests() []models.TeamRequest {
	return []models.TeamRequest{
		{
			ID:                 "1",
			ProjectName:        "AI Personal Finance Advisor",
			ProjectDescription: "A mobile app that uses AI to provide personalized financial advice, track spending, and suggest investment opportunities.",
			Roles:              []string{"Frontend Developer", "Backend Developer", "UI/UX Designer"},
			Skills:             []string{"React Native", "Node.js", "Python", "Figma", "Firebase"},
			Author:             models.Author{Name: "Alice Johnson", AvatarURL: placeholderAvatar},
			CreatedAt:          utc("2023-10-26T10:00:00Z"),
			HackathonDate:      utc("2023-11-15T09:00:00Z"),
		},
		{
			ID:                 "2",
			ProjectName:        "Gamified Language Learning",
			ProjectDescription: "An interactive web platform that makes learning a new language fun through games, leaderboards, and a compelling story.",
			Roles:              []string{"Full-Stack Developer", "UI/UX Designer"},
			Skills:             []string{"React", "TypeScript", "GraphQL", "Prisma", "PostgreSQL"},
			Author:             models.Author{Name: "Bob Williams"},
			CreatedAt:          utc("2023-10-25T14:30:00Z"),
			HackathonDate:      utc("2023-11-18T09:00:00Z"),
		},
		{
			ID:                 "3",
			ProjectName:        "Sustainable E-commerce Hub",
			ProjectDescription: "An online marketplace for eco-friendly and sustainable products, connecting conscious consumers with ethical brands.",
			Roles:              []string{"Frontend Developer", "Project Manager"},
			Skills:             []string{"Next.js", "Tailwind CSS", "Stripe", "Vercel"},
			Author:             models.Author{Name: "Charlie Brown", AvatarURL: placeholderAvatar},
			CreatedAt:          utc("2023-10-25T09:00:00Z"),
			HackathonDate:      utc("2023-11-20T09:00:00Z"),
		},
		{
			ID:                 "4",
			ProjectName:        "Community Garden Manager",
			ProjectDescription: "A tool to help local communities organize and manage shared garden spaces, track planting schedules, and share produce.",
			Roles:              []string{"Frontend Developer", "Backend Developer"},
			Skills:             []string{"Vue.js", "Django", "Heroku"},
			Author:             models.Author{Name: "Diana Prince"},
			CreatedAt:          utc("2023-10-24T18:00:00Z"),
			HackathonDate:      utc("2023-11-22T09:00:00Z"),
		},
		{
			ID:                 "5",
			ProjectName:        "VR Museum Tour Experience",
			ProjectDescription: "A virtual reality experience allowing users to tour famous museums from their home, providing an immersive educational tool.",
			Roles:              []string{"UI/UX Designer", "Full-Stack Developer"},
			Skills:             []string{"Unity", "C#", "Blender", "Oculus SDK"},
			Author:             models.Author{Name: "Eve Adams", AvatarURL: placeholderAvatar},
			CreatedAt:          utc("2023-10-24T11:45:00Z"),
			HackathonDate:      utc("2023-11-25T09:00:00Z"),
		},
		{
			ID:                 "6",
			ProjectName:        "Mental Wellness Chatbot",
			ProjectDescription: "An empathetic chatbot that provides a safe space for users to talk about their feelings and offers mindfulness exercises.",
			Roles:              []string{"Data Scientist", "Backend Developer"},
			Skills:             []string{"Python", "TensorFlow", "Flask", "Docker"},
			Author:             models.Author{Name: "Frank Miller"},
			CreatedAt:          utc("2023-10-23T20:15:00Z"),
			HackathonDate:      utc("2023-11-28T09:00:00Z"),
		},
	}
}

func builtinEvents(loc *time.Location) []models.CommunityEvent {
	return []models.CommunityEvent{
		{
			ID:          "1",
			Title:       "Community Garden Cleanup",
			Description: "Join us to help tidy up our community garden. Gloves and tools provided. A great way to meet neighbors and enjoy the outdoors.",
			Type:        models.EventVolunteer,
			Date:        local("2024-08-15T09:00:00", loc),
			Location:    "Central Park Community Garden",
			Contact:     "contact@communitygarden.org",
		},
		{
			ID:          "2",
			Title:       "Tech Startup Mixer",
			Description: "Looking for co-founders, investors, or just want to network with local tech talent? This is the place to be.",
			Type:        models.EventPartner,
			Date:        local("2024-08-22T18:00:00", loc),
			Location:    "Innovate Hub, 123 Tech Ave",
			Contact:     "events@innovatehub.com",
		},
		{
			ID:          "3",
			Title:       "Annual Summer Festival",
			Description: "A day of fun, food, and music for the whole family. We need attendees to make it a success!",
			Type:        models.EventAttendee,
			Date:        local("2024-08-30T11:00:00", loc),
			Location:    "Downtown Square",
			Contact:     "info@summerfest.org",
		},
		{
			ID:          "4",
			Title:       "Youth Mentorship Program",
			Description: "Seeking volunteers to mentor local youth. A commitment of 2 hours a week can make a huge difference in a young person's life.",
			Type:        models.EventVolunteer,
			Date:        local("2024-09-05T16:00:00", loc),
			Location:    "City Youth Center",
			Contact:     "mentor@cityyouth.org",
		},
		{
			ID:          "5",
			Title:       "Local Business Showcase",
			Description: "We are seeking local businesses to partner with for our showcase event. A great opportunity to promote your products and services.",
			Type:        models.EventPartner,
			Date:        local("2024-09-12T10:00:00", loc),
			Location:    "Main Street Convention Hall",
			Contact:     "bizshowcase@mainstreet.com",
		},
		{
			ID:          "6",
			Title:       "Open Mic Night",
			Description: "Share your talent or just come and enjoy the show. A welcoming space for poets, musicians, and comedians.",
			Type:        models.EventAttendee,
			Date:        local("2024-08-25T19:00:00", loc),
			Location:    "The Cozy Corner Cafe",
			Contact:     "events@cozycorner.com",
		},
	}
}

func builtinQuizzes() []models.Quiz {
	return []models.Quiz{
		{Title: "The Impossible Quiz", Subtitle: "Can you beat it?", Icon: "🤔"},
		{Title: "General Knowledge", Subtitle: "Trivia Time", Icon: "🌍"},
		{Title: "Anime Fandom", Subtitle: "Test Your Isagi IQ", Icon: "🍥"},
		{Title: "Tech & Coding", Subtitle: "Think like a programmer", Icon: "💻"},
		{Title: "Pop Culture", Subtitle: "Let's play APT", Icon: "🎤"},
	}
}

func builtinLeaderboard() []models.LeaderboardEntry {
	return []models.LeaderboardEntry{
		{Name: "Alice", Score: 1500, AvatarURL: placeholderAvatar, Hint: "abstract person"},
		{Name: "Bob", Score: 1350, AvatarURL: placeholderAvatar, Hint: "robot face"},
		{Name: "Charlie", Score: 1200, AvatarURL: placeholderAvatar, Hint: "cat astronaut"},
		{Name: "Diana", Score: 1100, AvatarURL: placeholderAvatar, Hint: "dog sunglasses"},
		{Name: "Eve", Score: 950, AvatarURL: placeholderAvatar, Hint: "pixel art"},
	}
}
