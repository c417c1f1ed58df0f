package entities

import "time"

// Post is a blog post. ID is assigned by the store on creation and never
// changes; Author and CreatedAt are fixed at creation as well.
type Post struct {
	ID        string
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
}

func NewPost(title, content, author string, createdAt time.Time) *Post {
	return &Post{
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: createdAt,
	}
}

// Revise replaces the mutable fields of the post.
func (p *Post) Revise(title, content string) {
	p.Title = title
	p.Content = content
}
