package storage

// Subject is a notes catalog entry holding a unit hierarchy.
type Subject struct {
	Keywords  []string        `json:"keywords"`
	Units     map[string]Unit `json:"units"`
	CreatedAt string          `json:"created_at,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

// Unit is one uploaded study material inside a subject.
type Unit struct {
	Filename   string   `json:"filename"`
	Keywords   []string `json:"keywords"`
	UploadedAt string   `json:"uploaded_at,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

// PastPaper is a question-paper catalog entry.
type PastPaper struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Keywords   []string `json:"keywords"`
	Type       string   `json:"type"`
	Filename   string   `json:"filename"`
	UploadedAt string   `json:"uploaded_at,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

// InfoSection groups info items under an admin-curated category.
type InfoSection struct {
	Keywords  []string   `json:"keywords"`
	Items     []InfoItem `json:"items"`
	CreatedAt string     `json:"created_at,omitempty"`
	UpdatedAt string     `json:"updated_at,omitempty"`
}

// InfoItem is one keyword-matched piece of campus information.
type InfoItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Keywords  []string `json:"keywords"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// KnowledgeEntry is an admin-curated question/answer pair.
type KnowledgeEntry struct {
	ID        int    `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UnansweredQuery records a question no handler could answer.
type UnansweredQuery struct {
	Query   string `json:"query"`
	AskedAt string `json:"asked_at"`
}

// FeedbackEntry is free-text user feedback.
type FeedbackEntry struct {
	Text        string `json:"text"`
	SubmittedAt string `json:"submitted_at"`
}

// AdminAuth is the admin password record.
type AdminAuth struct {
	PasswordHash string `json:"password_hash"`
	PasswordHint string `json:"password_hint,omitempty"`
}

// ChatAuth is the chatbot login record. LastChanged invalidates all
// sessions issued before the last password rotation.
type ChatAuth struct {
	PasswordHash string `json:"password_hash"`
	LastChanged  string `json:"last_changed"`
}

// ChatMessage is one turn of a saved conversation.
type ChatMessage struct {
	Role      string         `json:"role"`
	Type      string         `json:"type,omitempty"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
}

// Chat is a saved conversation document.
type Chat struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt string        `json:"created_at,omitempty"`
}

// ChatSummary is the listing shape for saved chats.
type ChatSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CreatedAt    string `json:"created_at"`
	MessageCount int    `json:"message_count"`
}
