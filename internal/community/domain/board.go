package domain

import "time"

// BoardKind selects which board an entry belongs to.
type BoardKind string

const (
	BoardNotice BoardKind = "notice"
	BoardQna    BoardKind = "qna"
	BoardBoast  BoardKind = "boast"
)

// Animal ids partition the qna and boast boards.
const (
	AnimalCat = 1
	AnimalDog = 2
)

// Animals lists the configured partitions in display order.
var Animals = []Animal{
	{ID: AnimalCat, Name: "cat"},
	{ID: AnimalDog, Name: "dog"},
}

type Animal struct {
	ID   int
	Name string
}

// KnownAnimal reports whether id names a configured partition.
func KnownAnimal(id int) bool {
	for _, a := range Animals {
		if a.ID == id {
			return true
		}
	}
	return false
}

// BoardEntry is a notice, qna or boast post. AnimalID is zero for notices.
// The owner is referenced by id and resolved through the user store on
// demand.
type BoardEntry struct {
	ID        int64
	Kind      BoardKind
	AnimalID  int
	Title     string
	Content   string
	Counter   int64
	UserID    string
	CreatedAt time.Time
}

// Comment hangs off a qna entry.
type Comment struct {
	ID        int64
	QnaID     int64
	UserID    string
	Content   string
	CreatedAt time.Time
}
