package memory_test

import (
	"testing"
	"time"

	"travelog/infras/memory"
	albumModel "travelog/internal/domains/album/model"
	noteModel "travelog/internal/domains/note/model"
	photoModel "travelog/internal/domains/photo/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFindAlbumCaseInsensitive(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Roma 2023", UserEmail: "a@b.com", Date: time.Now()})

	album, found := store.FindAlbum("roma 2023")
	require.True(t, found)
	assert.Equal(t, "Roma 2023", album.Name)

	_, found = store.FindAlbum("paris 2023")
	assert.False(t, found)
}

func TestStoreAlbumsByOwnerNewestFirst(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Old", UserEmail: "a@b.com", Date: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)})
	store.PutAlbum(albumModel.Album{Name: "New", UserEmail: "a@b.com", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	store.PutAlbum(albumModel.Album{Name: "Other", UserEmail: "c@d.com", Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)})

	albums := store.AlbumsByOwner("a@b.com")
	require.Len(t, albums, 2)
	assert.Equal(t, "New", albums[0].Name)
	assert.Equal(t, "Old", albums[1].Name)
}

func TestStoreRemoveAlbumCascades(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com", Date: time.Now()})
	store.PutPhoto(photoModel.Photo{ID: "p1", AlbumID: "japan 2024", Title: "Temple", Date: time.Now()})
	store.PutNote(noteModel.Note{ID: "n1", AlbumID: "Japan 2024", Title: "Tips", Date: time.Now()})

	removed := store.RemoveAlbum("Japan 2024", "a@b.com")
	assert.True(t, removed)

	assert.Empty(t, store.PhotosByAlbum("Japan 2024"))
	assert.Empty(t, store.NotesByAlbum("Japan 2024"))

	_, found := store.FindAlbum("Japan 2024")
	assert.False(t, found)
}

func TestStoreRemoveAlbumMissingIsNoop(t *testing.T) {
	store := memory.New()

	assert.False(t, store.RemoveAlbum("Nope", "a@b.com"))
}

func TestStoreRemoveAlbumRequiresExactOwner(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com", Date: time.Now()})

	assert.False(t, store.RemoveAlbum("Japan 2024", "intruder@x.com"))

	_, found := store.FindAlbum("Japan 2024")
	assert.True(t, found)
}

func TestStorePhotoLifecycle(t *testing.T) {
	store := memory.New()
	store.PutPhoto(photoModel.Photo{ID: "p1", AlbumID: "Japan 2024", Title: "Temple", Date: time.Now()})

	photos := store.PhotosByAlbum("JAPAN 2024")
	require.Len(t, photos, 1)
	assert.Equal(t, "Temple", photos[0].Title)

	assert.True(t, store.RemovePhoto("p1", "japan 2024"))
	assert.False(t, store.RemovePhoto("p1", "japan 2024"))
	assert.Empty(t, store.PhotosByAlbum("Japan 2024"))
}

func TestStoreUpdateNote(t *testing.T) {
	store := memory.New()
	store.PutNote(noteModel.Note{ID: "n1", AlbumID: "Japan 2024", Title: "Tips", Date: time.Now()})

	updated := store.UpdateNote("n1", "japan 2024", func(n *noteModel.Note) {
		n.Title = "Travel tips"
	})
	require.True(t, updated)

	notes := store.NotesByAlbum("Japan 2024")
	require.Len(t, notes, 1)
	assert.Equal(t, "Travel tips", notes[0].Title)

	assert.False(t, store.UpdateNote("missing", "Japan 2024", func(n *noteModel.Note) {}))
}

func TestSeededStoreHasDemoData(t *testing.T) {
	store := memory.NewSeeded()

	user, found := store.GetUser("demo@ejemplo.com")
	require.True(t, found)
	assert.Equal(t, "Usuario Demo", user.UserName)

	albums := store.AlbumsByOwner("demo@ejemplo.com")
	require.Len(t, albums, 2)
	assert.Equal(t, "Japón 2024", albums[0].Name)

	assert.Len(t, store.NotesByAlbum("Viaje a Barcelona"), 1)
	assert.Len(t, store.PlacesByAlbum("Japón 2024"), 1)
	assert.Empty(t, store.PhotosByAlbum("Japón 2024"))
}
