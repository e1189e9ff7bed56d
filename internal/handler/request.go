package handler

type NotifyRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}
