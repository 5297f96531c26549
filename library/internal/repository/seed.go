package repository

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type Seed struct {
	Students   []model.Student   `yaml:"students"`
	Books      []model.Book      `yaml:"books"`
	Librarians []model.Librarian `yaml:"librarians"`
	Users      []model.User      `yaml:"users"`
}

// LoadSeed reads the seed file at path, or the bundled seed when path is empty.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return ParseSeed(bytes.NewReader(defaultSeed))
	}
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, errors.Wrap(err, "open seed")
	}
	defer f.Close()
	return ParseSeed(f)
}

func ParseSeed(r io.Reader) (Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, errors.Wrap(err, "decode seed")
	}
	for i := range s.Books {
		if s.Books[i].Available == "" {
			s.Books[i].Available = model.AvailabilityYes
		}
	}
	for i := range s.Librarians {
		if s.Librarians[i].Role == "" {
			s.Librarians[i].Role = string(auth.RoleStaff)
		}
	}
	return s, s.validate()
}

func (s Seed) validate() error {
	seen := make(map[string]struct{})
	check := func(kind, id string) error {
		if id == "" {
			return errors.Errorf("seed: %s without id", kind)
		}
		key := kind + "/" + id
		if _, ok := seen[key]; ok {
			return errors.Errorf("seed: duplicate %s %q", kind, id)
		}
		seen[key] = struct{}{}
		return nil
	}
	for _, st := range s.Students {
		if err := check("student", st.StudentID); err != nil {
			return err
		}
	}
	for _, b := range s.Books {
		if err := check("book", b.BookID); err != nil {
			return err
		}
		// seed students hold no loans, so every seeded book is on the shelf
		if b.Available != model.AvailabilityYes {
			return errors.Errorf("seed: book %q has availability %q, want %q", b.BookID, b.Available, model.AvailabilityYes)
		}
	}
	for _, l := range s.Librarians {
		if err := check("librarian", l.LibrarianID); err != nil {
			return err
		}
	}
	for _, u := range s.Users {
		if err := check("user", u.Username); err != nil {
			return err
		}
		if _, ok := seen["student/"+u.Username]; ok {
			return errors.Errorf("seed: user %q shadows a student id", u.Username)
		}
		if r := auth.Role(u.Role); r != auth.RoleAdmin && r != auth.RoleStaff {
			return errors.Errorf("seed: user %q has role %q", u.Username, u.Role)
		}
	}
	return nil
}

// HashPasswords replaces every plaintext seed password with its hash.
func (s *Seed) HashPasswords(h auth.PasswordHasher) error {
	for i := range s.Students {
		hash, err := h.Hash(s.Students[i].Password)
		if err != nil {
			return errors.Wrapf(err, "hash student %s", s.Students[i].StudentID)
		}
		s.Students[i].Password = hash
	}
	for i := range s.Users {
		hash, err := h.Hash(s.Users[i].Password)
		if err != nil {
			return errors.Wrapf(err, "hash user %s", s.Users[i].Username)
		}
		s.Users[i].Password = hash
	}
	return nil
}
