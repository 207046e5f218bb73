package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	albumModel "travelog/internal/domains/album/model"
	noteModel "travelog/internal/domains/note/model"
	photoModel "travelog/internal/domains/photo/model"
	placeModel "travelog/internal/domains/place/model"
	userModel "travelog/internal/domains/user/model"

	"github.com/rs/zerolog/log"
)

// Store is the in-memory backend used when no database is configured. It
// holds the same rows the relational backend would, guarded by a single
// RWMutex since handlers mutate it concurrently. Contents live for the
// lifetime of the process.
type Store struct {
	mu sync.RWMutex

	users  []userModel.User
	albums []albumModel.Album
	photos []photoModel.Photo
	notes  []noteModel.Note
	places []placeModel.Place
}

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with the demo dataset so the service
// is browsable without registering. The seeded password hash corresponds to
// the published demo credentials.
func NewSeeded() *Store {
	log.Info().Msg("Running in demo mode with seeded in-memory data")

	barcelonaDesc := "Vacaciones de verano 2023"
	japanDesc := "Viaje a Japón 2024"
	barcelonaNote := "La Sagrada Familia es imprescindible. También visitar el Parque Güell."
	japanNote := "Comprar el JR Pass antes del viaje. Los cerezos en flor están en su mejor momento en abril."
	sagradaLink := "https://maps.google.com/?q=Sagrada+Familia+Barcelona"
	sensojiLink := "https://maps.google.com/?q=Senso-ji+Temple+Tokyo"

	return &Store{
		users: []userModel.User{
			{
				Email:        "demo@ejemplo.com",
				UserName:     "Usuario Demo",
				PasswordHash: "$2a$10$XOPbrlUPQdwdJUpSrIF6X.LbE14qsMmKGhM1A8W9iqaG3vv1BD7WC",
			},
		},
		albums: []albumModel.Album{
			{
				Name:        "Viaje a Barcelona",
				UserEmail:   "demo@ejemplo.com",
				Description: &barcelonaDesc,
				Date:        time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				Name:        "Japón 2024",
				UserEmail:   "demo@ejemplo.com",
				Description: &japanDesc,
				Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		notes: []noteModel.Note{
			{
				ID:      "demo-nota-1",
				AlbumID: "Viaje a Barcelona",
				Title:   "Lugares recomendados",
				Content: &barcelonaNote,
				Date:    time.Date(2023, 7, 16, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:      "demo-nota-2",
				AlbumID: "Japón 2024",
				Title:   "Consejos de viaje",
				Content: &japanNote,
				Date:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			},
		},
		places: []placeModel.Place{
			{
				Name:    "Sagrada Familia",
				AlbumID: "Viaje a Barcelona",
				Link:    &sagradaLink,
				Date:    time.Date(2023, 7, 16, 0, 0, 0, 0, time.UTC),
			},
			{
				Name:    "Templo Senso-ji",
				AlbumID: "Japón 2024",
				Link:    &sensojiLink,
				Date:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

// Users

func (s *Store) GetUser(email string) (userModel.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}

	return userModel.User{}, false
}

func (s *Store) PutUser(user userModel.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
}

// Albums

// FindAlbum matches the album name case-insensitively and returns the first
// hit, mirroring the LOWER(name) LIMIT 1 lookup of the relational backend.
func (s *Store) FindAlbum(name string) (albumModel.Album, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.albums {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}

	return albumModel.Album{}, false
}

func (s *Store) AlbumsByOwner(email string) []albumModel.Album {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []albumModel.Album
	for _, a := range s.albums {
		if a.UserEmail == email {
			out = append(out, a)
		}
	}

	sortNewestFirst(out, func(a albumModel.Album) time.Time { return a.Date })

	return out
}

func (s *Store) PutAlbum(album albumModel.Album) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.albums = append(s.albums, album)
}

// RemoveAlbum deletes the album matching name and owner exactly, along with
// every photo, note and place attached to it. Children are matched by album
// name case-insensitively, the same way listings find them. Reports whether
// an album row was removed; removing a missing album is not an error.
func (s *Store) RemoveAlbum(name, ownerEmail string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, a := range s.albums {
		if a.Name == name && a.UserEmail == ownerEmail {
			idx = i
			break
		}
	}

	if idx == -1 {
		return false
	}

	s.albums = append(s.albums[:idx], s.albums[idx+1:]...)

	s.photos = deleteMatching(s.photos, func(p photoModel.Photo) bool {
		return strings.EqualFold(p.AlbumID, name)
	})
	s.notes = deleteMatching(s.notes, func(n noteModel.Note) bool {
		return strings.EqualFold(n.AlbumID, name)
	})
	s.places = deleteMatching(s.places, func(p placeModel.Place) bool {
		return strings.EqualFold(p.AlbumID, name)
	})

	return true
}

// Photos

func (s *Store) PhotosByAlbum(albumID string) []photoModel.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []photoModel.Photo
	for _, p := range s.photos {
		if strings.EqualFold(p.AlbumID, albumID) {
			out = append(out, p)
		}
	}

	sortNewestFirst(out, func(p photoModel.Photo) time.Time { return p.Date })

	return out
}

func (s *Store) PutPhoto(photo photoModel.Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.photos = append(s.photos, photo)
}

func (s *Store) RemovePhoto(id, albumID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.photos)
	s.photos = deleteMatching(s.photos, func(p photoModel.Photo) bool {
		return p.ID == id && strings.EqualFold(p.AlbumID, albumID)
	})

	return len(s.photos) != before
}

// Notes

func (s *Store) NotesByAlbum(albumID string) []noteModel.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []noteModel.Note
	for _, n := range s.notes {
		if strings.EqualFold(n.AlbumID, albumID) {
			out = append(out, n)
		}
	}

	sortNewestFirst(out, func(n noteModel.Note) time.Time { return n.Date })

	return out
}

func (s *Store) PutNote(note noteModel.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append(s.notes, note)
}

func (s *Store) UpdateNote(id, albumID string, mutate func(*noteModel.Note)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id && strings.EqualFold(s.notes[i].AlbumID, albumID) {
			mutate(&s.notes[i])
			return true
		}
	}

	return false
}

func (s *Store) RemoveNote(id, albumID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.notes)
	s.notes = deleteMatching(s.notes, func(n noteModel.Note) bool {
		return n.ID == id && strings.EqualFold(n.AlbumID, albumID)
	})

	return len(s.notes) != before
}

// Places

func (s *Store) PlacesByAlbum(albumID string) []placeModel.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []placeModel.Place
	for _, p := range s.places {
		if strings.EqualFold(p.AlbumID, albumID) {
			out = append(out, p)
		}
	}

	sortNewestFirst(out, func(p placeModel.Place) time.Time { return p.Date })

	return out
}

func (s *Store) PutPlace(place placeModel.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.places = append(s.places, place)
}

func (s *Store) UpdatePlace(name, albumID string, mutate func(*placeModel.Place)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.places {
		if s.places[i].Name == name && strings.EqualFold(s.places[i].AlbumID, albumID) {
			mutate(&s.places[i])
			return true
		}
	}

	return false
}

func (s *Store) RemovePlace(name, albumID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.places)
	s.places = deleteMatching(s.places, func(p placeModel.Place) bool {
		return p.Name == name && strings.EqualFold(p.AlbumID, albumID)
	})

	return len(s.places) != before
}

func sortNewestFirst[T any](items []T, date func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return date(items[i]).After(date(items[j]))
	})
}

func deleteMatching[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}

	return out
}
