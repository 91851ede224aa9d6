package domain

import "time"

// Author is an immutable snapshot of an author.
type Author struct {
	ID         AuthorID
	Name       AuthorName
	Email      Email
	Bio        Bio
	Timestamps Timestamps
}

// AuthorRecord is the primitive form of an author at persistence boundaries.
type AuthorRecord struct {
	ID        string
	Name      string
	Email     string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RehydrateAuthor rebuilds an author from stored primitives.
func RehydrateAuthor(r AuthorRecord) (Author, error) {
	id, err := NewAuthorID(r.ID)
	if err != nil {
		return Author{}, ErrCorrupted("author", r.ID, err)
	}
	name, err := NewAuthorName(r.Name)
	if err != nil {
		return Author{}, ErrCorrupted("author", r.ID, err)
	}
	email, err := NewEmail(r.Email)
	if err != nil {
		return Author{}, ErrCorrupted("author", r.ID, err)
	}
	bio, err := NewBio(r.Bio)
	if err != nil {
		return Author{}, ErrCorrupted("author", r.ID, err)
	}
	ts, err := NewTimestamps(r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return Author{}, ErrCorrupted("author", r.ID, err)
	}
	return Author{ID: id, Name: name, Email: email, Bio: bio, Timestamps: ts}, nil
}

// Record converts the snapshot into its primitive form.
func (a Author) Record() AuthorRecord {
	return AuthorRecord{
		ID:        string(a.ID),
		Name:      string(a.Name),
		Email:     string(a.Email),
		Bio:       string(a.Bio),
		CreatedAt: a.Timestamps.CreatedAt,
		UpdatedAt: a.Timestamps.UpdatedAt,
	}
}
