package asset

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	{Field: "image_url", Bucket: "profile", Kind: KindImage},
	{Field: "cv_url", Bucket: "profile", Kind: KindDocument},
	{Field: "gallery", Bucket: "project-files", Kind: KindImage, MaxFiles: 5},
}

func testRef(bucket, key string) Reference {
	return Reference{
		Bucket: bucket,
		Key:    key,
		URL:    fmt.Sprintf("https://cdn.test/%s/%s", bucket, key),
	}
}

func TestResolveOmittedFieldKeepsStoredValue(t *testing.T) {
	r := NewResolver(newFakeStore())

	current := map[string][]string{
		"cv_url": {"https://cdn.test/profile/a.pdf"},
	}

	plan := r.Resolve(testSchema, current, map[string]Change{})

	assert.Equal(t, []string{"https://cdn.test/profile/a.pdf"}, plan.Fields["cv_url"])
	assert.Empty(t, plan.Orphans)
}

func TestResolveClearOrphansStoredValue(t *testing.T) {
	r := NewResolver(newFakeStore())

	current := map[string][]string{
		"cv_url": {"https://cdn.test/profile/a.pdf"},
	}

	plan := r.Resolve(testSchema, current, map[string]Change{
		"cv_url": Clear(),
	})

	assert.Empty(t, plan.Fields["cv_url"])
	require.Len(t, plan.Orphans, 1)
	assert.Equal(t, "a.pdf", plan.Orphans[0].Key)
	assert.Equal(t, "profile", plan.Orphans[0].Bucket)
}

func TestResolveReplaceOrphansPreviousValue(t *testing.T) {
	r := NewResolver(newFakeStore())

	current := map[string][]string{
		"image_url": {"https://cdn.test/profile/old.png"},
	}

	plan := r.Resolve(testSchema, current, map[string]Change{
		"image_url": Replace(testRef("profile", "new.png")),
	})

	assert.Equal(t, []string{"https://cdn.test/profile/new.png"}, plan.Fields["image_url"])
	require.Len(t, plan.Orphans, 1)
	assert.Equal(t, "old.png", plan.Orphans[0].Key)
}

func TestResolveReplaceWithSameValueOrphansNothing(t *testing.T) {
	r := NewResolver(newFakeStore())

	current := map[string][]string{
		"image_url": {"https://cdn.test/profile/same.png"},
	}

	plan := r.Resolve(testSchema, current, map[string]Change{
		"image_url": Replace(testRef("profile", "same.png")),
	})

	assert.Empty(t, plan.Orphans)
}

func TestResolveObjectReusedAcrossSlotsStaysAlive(t *testing.T) {
	r := NewResolver(newFakeStore())

	// The same object is referenced by a single-file slot and the gallery.
	shared := "https://cdn.test/project-files/shared.png"
	current := map[string][]string{
		"image_url": {shared},
		"gallery":   {shared, "https://cdn.test/project-files/b.png"},
	}

	// Clearing image_url must not delete the object, the gallery still
	// references it.
	plan := r.Resolve(testSchema, current, map[string]Change{
		"image_url": Clear(),
	})

	assert.Empty(t, plan.Orphans)
	assert.Contains(t, plan.Fields["gallery"], shared)
}

func TestResolveExternalURLNeverOrphaned(t *testing.T) {
	r := NewResolver(newFakeStore())

	current := map[string][]string{
		"cv_url": {"https://example.com/my-hosted-cv.pdf"},
	}

	plan := r.Resolve(testSchema, current, map[string]Change{
		"cv_url": Clear(),
	})

	// The field is cleared, but a URL outside the managed store is not
	// eligible for deletion.
	assert.Empty(t, plan.Fields["cv_url"])
	assert.Empty(t, plan.Orphans)
}

func TestResolveGalleryPartialReplace(t *testing.T) {
	r := NewResolver(newFakeStore())

	keep := testRef("project-files", "keep.png")
	current := map[string][]string{
		"gallery": {keep.URL, "https://cdn.test/project-files/drop.png"},
	}

	plan := r.Resolve(testSchema, current, map[string]Change{
		"gallery": Replace(keep, testRef("project-files", "new.png")),
	})

	require.Len(t, plan.Orphans, 1)
	assert.Equal(t, "drop.png", plan.Orphans[0].Key)
}

func TestReferencesCollectsEveryManagedObject(t *testing.T) {
	r := NewResolver(newFakeStore())

	current := map[string][]string{
		"image_url": {"https://cdn.test/profile/a.png"},
		"cv_url":    {"https://example.com/external.pdf"},
		"gallery":   {"https://cdn.test/project-files/b.png", "https://cdn.test/project-files/c.png"},
	}

	refs := r.References(testSchema, current)

	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, ref.Key)
	}
	assert.ElementsMatch(t, []string{"a.png", "b.png", "c.png"}, keys)
}

// TestResolveNeverOrphansLiveReference drives random update sequences
// against a simulated record and asserts that no reference is ever
// reported as an orphan while any field still names it.
func TestResolveNeverOrphansLiveReference(t *testing.T) {
	r := NewResolver(newFakeStore())
	rng := rand.New(rand.NewSource(42))

	fields := map[string][]string{}
	nextKey := 0

	newURL := func(bucket string) string {
		nextKey++
		return fmt.Sprintf("https://cdn.test/%s/obj-%d", bucket, nextKey)
	}

	// Pool of URLs that may be reused across slots to exercise the
	// cross-slot guard.
	pool := []string{
		newURL("profile"),
		newURL("project-files"),
	}

	randomValue := func(slot Slot) Reference {
		var url string
		if rng.Intn(4) == 0 {
			url = pool[rng.Intn(len(pool))]
		} else {
			url = newURL(slot.Bucket)
		}
		bucket, key, _ := (newFakeStore()).KeyForURL(url)
		return Reference{Bucket: bucket, Key: key, URL: url}
	}

	for step := 0; step < 500; step++ {
		changes := map[string]Change{}
		for _, slot := range testSchema {
			switch rng.Intn(3) {
			case 0:
				// omitted
			case 1:
				changes[slot.Field] = Clear()
			case 2:
				n := 1
				if slot.Multi() {
					n = 1 + rng.Intn(3)
				}
				refs := make([]Reference, n)
				for i := range refs {
					refs[i] = randomValue(slot)
				}
				changes[slot.Field] = Replace(refs...)
			}
		}

		plan := r.Resolve(testSchema, fields, changes)

		referenced := map[string]bool{}
		for _, values := range plan.Fields {
			for _, url := range values {
				referenced[url] = true
			}
		}

		for _, orphan := range plan.Orphans {
			assert.False(t, referenced[orphan.URL],
				"step %d: orphaned %s while still referenced", step, orphan.URL)
		}

		fields = plan.Fields
	}
}
