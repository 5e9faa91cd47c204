package http

import (
	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/pkg/petsdk"
)

func toAuthor(u *domain.User) *petsdk.Author {
	if u == nil {
		return nil
	}
	return &petsdk.Author{ID: u.ID, Username: u.Username, Nickname: u.Nickname}
}

func toEntry(e domain.BoardEntry, author *domain.User) petsdk.Entry {
	return petsdk.Entry{
		ID:        e.ID,
		Kind:      string(e.Kind),
		AnimalID:  e.AnimalID,
		Title:     e.Title,
		Content:   e.Content,
		Counter:   e.Counter,
		CreatedAt: e.CreatedAt,
		Author:    toAuthor(author),
	}
}

func toEntries(es []domain.BoardEntry, authors map[string]domain.User) []petsdk.Entry {
	out := make([]petsdk.Entry, 0, len(es))
	for _, e := range es {
		var author *domain.User
		if u, ok := authors[e.UserID]; ok {
			author = &u
		}
		out = append(out, toEntry(e, author))
	}
	return out
}

func toPage(p domain.Page[domain.BoardEntry], authors map[string]domain.User) petsdk.Page {
	return petsdk.Page{
		Items:      toEntries(p.Items, authors),
		Number:     p.Number,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
		StartBlock: p.StartBlock,
		EndBlock:   p.EndBlock,
		Last:       p.Last(),
	}
}

func toDetail(d service.EntryDetail) petsdk.EntryDetail {
	out := petsdk.EntryDetail{
		Entry:    toEntry(d.Entry, d.Author),
		Comments: make([]petsdk.Comment, 0, len(d.Comments)),
	}
	for _, c := range d.Comments {
		out.Comments = append(out.Comments, petsdk.Comment{
			ID:        c.Comment.ID,
			Content:   c.Comment.Content,
			CreatedAt: c.Comment.CreatedAt,
			Author:    toAuthor(c.Author),
		})
	}
	return out
}

func toUser(u domain.User) petsdk.User {
	return petsdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Phone:     u.Phone,
		Email:     u.Email,
		Birth:     u.Birth,
		Authority: string(u.Authority),
	}
}
