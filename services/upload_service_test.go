package services

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/portfolio-api/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func imageUpload(name, contentType string, body []byte) *ImageUpload {
	return &ImageUpload{Filename: name, ContentType: contentType, Size: int64(len(body)), Content: bytes.NewReader(body)}
}

func TestProjectService_UploadImage(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*ProjectService, *fakeProjects, afero.Fs, *models.Project) {
		svc, store, fs := newProjects(t)
		p := store.add(models.Project{Title: "P", Image: models.DefaultProjectImage, Technologies: pq.StringArray{"Go"}})
		return svc, store, fs, p
	}

	t.Run("Should store the file under a deterministic name and update the project", func(t *testing.T) {
		svc, store, fs, p := setup(t)

		name, err := svc.UploadImage(ctx, p.ID, imageUpload("shot.png", "image/png", pngHeader))

		require.NoError(t, err)
		assert.Equal(t, "project_"+p.ID+".png", name)
		exists, err := afero.Exists(fs, filepath.Join("public/uploads", name))
		require.NoError(t, err)
		assert.True(t, exists)
		got, _ := store.FindByID(ctx, p.ID)
		assert.Equal(t, name, got.Image)
	})

	t.Run("Should check the project before the file", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		_, err := svc.UploadImage(ctx, uuid.NewString(), nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should require a file", func(t *testing.T) {
		svc, _, _, p := setup(t)
		_, err := svc.UploadImage(ctx, p.ID, nil)
		assert.ErrorIs(t, err, ErrNoFile)
	})

	t.Run("Should reject non-image media types", func(t *testing.T) {
		svc, _, _, p := setup(t)
		_, err := svc.UploadImage(ctx, p.ID, imageUpload("notes.txt", "text/plain", []byte("hello")))
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("Should sniff the content when no type was declared", func(t *testing.T) {
		svc, _, _, p := setup(t)

		name, err := svc.UploadImage(ctx, p.ID, imageUpload("blob", "", pngHeader))
		require.NoError(t, err)
		assert.Equal(t, "project_"+p.ID+".png", name)

		_, err = svc.UploadImage(ctx, p.ID, imageUpload("blob", "application/octet-stream", []byte("plain text")))
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("Should reject files over the ceiling and leave the image unchanged", func(t *testing.T) {
		svc, store, fs, p := setup(t)
		big := append(append([]byte{}, pngHeader...), make([]byte, 2*1000*1000)...)

		_, err := svc.UploadImage(ctx, p.ID, imageUpload("big.png", "image/png", big))

		assert.ErrorIs(t, err, ErrImageTooBig)
		got, _ := store.FindByID(ctx, p.ID)
		assert.Equal(t, models.DefaultProjectImage, got.Image)
		exists, _ := afero.DirExists(fs, "public/uploads")
		assert.False(t, exists)
	})

	t.Run("Should surface filesystem failures as upload failures", func(t *testing.T) {
		store := newFakeProjects()
		p := store.add(models.Project{Title: "P", Image: models.DefaultProjectImage})
		svc := NewProjectService(store, NewImageStorage(afero.NewReadOnlyFs(afero.NewMemMapFs()), "uploads"), 1000000)

		_, err := svc.UploadImage(ctx, p.ID, imageUpload("shot.png", "image/png", pngHeader))

		assert.ErrorIs(t, err, ErrUploadFailed)
		got, _ := store.FindByID(ctx, p.ID)
		assert.Equal(t, models.DefaultProjectImage, got.Image)
	})
}
