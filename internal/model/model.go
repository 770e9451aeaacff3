package model

import "time"

// Topic categories returned by the generator.
const (
	CategoryComputerScience     = "Computer Science"
	CategoryMathematics         = "Mathematics"
	CategoryAIML                = "AI/ML"
	CategorySoftwareEngineering = "Software Engineering"
	CategoryDataScience         = "Data Science"
	CategoryOther               = "Other"
)

type Topic struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Concept struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TopicID    uint      `json:"topic_id" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content"` // markdown body
	Difficulty string    `json:"difficulty"`
	OrderIndex int       `json:"order_index"`
	Topic      *Topic    `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	CreatedAt  time.Time `json:"created_at"`
}

type Problem struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TopicID       uint      `json:"topic_id" gorm:"index"`
	Question      string    `json:"question" gorm:"not null"`
	Options       []string  `json:"options" gorm:"serializer:json"` // exactly 4
	CorrectAnswer int       `json:"correct_answer"`                 // 0-based index into Options
	Hint          string    `json:"hint"`
	Explanation   string    `json:"explanation"`
	Difficulty    string    `json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserProgress holds the per-(user, topic) counters. Counters only ever grow
// additively; LastActivity is stamped on every write.
type UserProgress struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_topic"`
	TopicID           uint      `json:"topic_id" gorm:"not null;uniqueIndex:idx_user_topic"`
	ConceptsCompleted int       `json:"concepts_completed"`
	ProblemsSolved    int       `json:"problems_solved"`
	ProblemsCorrect   int       `json:"problems_correct"`
	XPEarned          int       `json:"xp_earned"`
	StreakDays        int       `json:"streak_days"`
	LastActivity      time.Time `json:"last_activity"`
	Topic             *Topic    `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (UserProgress) TableName() string { return "user_progress" }

// ProgressDelta carries the increments applied to a UserProgress row.
type ProgressDelta struct {
	ConceptsCompleted int
	ProblemsSolved    int
	ProblemsCorrect   int
	XPEarned          int
}

type Profile struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	UserID               string    `json:"user_id" gorm:"not null;uniqueIndex"`
	DisplayName          string    `json:"display_name"`
	Email                string    `json:"email"`
	AvatarURL            string    `json:"avatar_url"`
	Bio                  string    `json:"bio"`
	LearningGoals        []string  `json:"learning_goals" gorm:"serializer:json"`
	PreferredTopics      []string  `json:"preferred_topics" gorm:"serializer:json"`
	ExperienceLevel      string    `json:"experience_level" gorm:"default:'beginner'"`
	DailyGoalMinutes     int       `json:"daily_goal_minutes" gorm:"default:30"`
	NotificationsEnabled bool      `json:"notifications_enabled" gorm:"default:true"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
