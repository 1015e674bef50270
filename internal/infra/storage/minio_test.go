package storage

import (
	"context"
	"os"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/legal-triage/internal/domain/archive"
)

func TestObjectKeySortsNewestFirst(t *testing.T) {
	base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	var keys []string
	for i := 0; i < 5; i++ {
		keys = append(keys, objectKey(&archive.Record{ID: archive.RecordID(strconv.Itoa(i)), CreatedAt: base.Add(time.Duration(i) * time.Second)}))
	}
	sort.Strings(keys)

	assert.Equal(t, "4.json", keys[0][len(keys[0])-6:])
	assert.Equal(t, "0.json", keys[4][len(keys[4])-6:])
	for _, k := range keys {
		assert.Equal(t, archivePrefix, k[:len(archivePrefix)])
	}
}

// Runs against a real MinIO when ARCHIVE_TEST_MINIO_ENDPOINT is set.
func TestStoreRoundTrip(t *testing.T) {
	endpoint := os.Getenv("ARCHIVE_TEST_MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("ARCHIVE_TEST_MINIO_ENDPOINT not set")
	}
	ctx := context.Background()
	bucket := "legal-triage-test-" + uuid.NewString()[:8]

	s, err := New(ctx, endpoint, "us-east-1", bucket,
		os.Getenv("ARCHIVE_TEST_MINIO_ACCESS_KEY"), os.Getenv("ARCHIVE_TEST_MINIO_SECRET_KEY"), false)
	require.NoError(t, err)
	require.NoError(t, s.Check(ctx))

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ctx, &archive.Record{
			ID:        archive.RecordID(uuid.NewString()),
			Domain:    "consumer",
			Category:  "defective_product",
			Urgency:   "MEDIUM",
			City:      strconv.Itoa(i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	recs, err := s.Latest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2", recs[0].City)
	assert.Equal(t, "1", recs[1].City)
}
