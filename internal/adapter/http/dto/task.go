package dto

// Task is the wire shape of a board task.
type Task struct {
	ID          uint64  `json:"id,omitempty"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description,omitempty"`
	DueDate     *string `json:"dueDate"`
	ColumnID    *uint64 `json:"columnId"`
	UserID      *uint64 `json:"userId"`
	StatusID    *int    `json:"statusId"`
	SortOrder   int     `json:"sortOrder" binding:"gte=0"`
	Tags        string  `json:"tags,omitempty"`
	URL         string  `json:"url,omitempty"`
}

type Column struct {
	ID    uint64 `json:"id,omitempty"`
	Title string `json:"title" binding:"required"`
	Order int    `json:"order" binding:"gte=0"`
}

type User struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
}

type Tick struct {
	ID     uint64 `json:"id"`
	TaskID uint64 `json:"taskId"`
	Text   string `json:"text"`
	Done   bool   `json:"done"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
