package bakfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bakfmt/backup"
	"github.com/arloliu/bakfmt/errs"
	"github.com/arloliu/bakfmt/format"
	"github.com/arloliu/bakfmt/model"
)

// TestNewTextEncoder verifies the default encoder writes base64 blobs
func TestNewTextEncoder(t *testing.T) {
	var out bytes.Buffer
	encoder, err := NewTextEncoder(&out)
	require.NoError(t, err)
	require.False(t, encoder.Compact())

	rec := &model.Record{Bins: []model.Bin{{Name: "b", Value: model.BlobValue([]byte("hi"))}}}
	_, err = encoder.EncodeRecord(rec, NewBinFilter("b"))
	require.NoError(t, err)
	require.Equal(t, "aGk=\n", out.String())
}

// TestNewCompactTextEncoder verifies compact mode writes raw blobs
func TestNewCompactTextEncoder(t *testing.T) {
	var out bytes.Buffer
	encoder, err := NewCompactTextEncoder(&out)
	require.NoError(t, err)
	require.True(t, encoder.Compact())

	rec := &model.Record{Bins: []model.Bin{{Name: "b", Value: model.BlobValue([]byte("hi"))}}}
	_, err = encoder.EncodeRecord(rec, NewBinFilter("b"))
	require.NoError(t, err)
	require.Equal(t, "hi\n", out.String())
}

func TestNewCompactTextEncoder_KeepsCallerOptions(t *testing.T) {
	opts := make([]backup.TextEncoderOption, 1, 2)
	opts[0] = backup.WithCompact(false)

	var out bytes.Buffer
	encoder, err := NewCompactTextEncoder(&out, opts...)
	require.NoError(t, err)
	require.True(t, encoder.Compact())

	// The spare capacity of the caller's slice must stay untouched.
	require.Nil(t, opts[:2][1])
}

func TestNewTextEncoder_NilWriter(t *testing.T) {
	_, err := NewTextEncoder(nil)
	require.ErrorIs(t, err, errs.ErrNilWriter)
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		UDFFiles: []*model.UDFFile{
			{Name: "sum.lua", Type: format.UDFTypeLua, Content: []byte("return 1")},
		},
		SecondaryIndexes: []*model.SecondaryIndex{
			{
				Namespace: "test",
				Set:       "users",
				Name:      "age_idx",
				Type:      format.IndexTypeNone,
				Paths:     []model.PathParam{{Path: "age", Type: format.PathTypeNumeric}},
			},
		},
		Records: []*model.Record{
			{
				Key:  model.Key{Namespace: "test", Set: "users", Value: model.StringValue("u1")},
				TTL:  model.TTLNeverExpire,
				Bins: []model.Bin{{Name: "name", Value: model.StringValue("Ann")}, {Name: "age", Value: model.IntegerValue(31)}},
			},
			{
				Key:  model.Key{Namespace: "test", Set: "users"},
				TTL:  3600,
				Bins: []model.Bin{{Name: "age", Value: model.IntegerValue(40)}},
			},
		},
	}
}

func TestEncodeSnapshot(t *testing.T) {
	var out bytes.Buffer
	encoder, err := NewTextEncoder(&out)
	require.NoError(t, err)

	n, err := EncodeSnapshot(encoder, testSnapshot(), NewBinFilter("name", "age"))
	require.NoError(t, err)

	want := "L sum.lua 8 return 1\n" +
		"test users age_idx N 1 age N\n" +
		"\"u1\"\"Ann\",31\n" +
		",40\n"
	require.Equal(t, want, out.String())
	require.Equal(t, int64(len(want)), n)

	stats := encoder.Stats()
	require.Equal(t, int64(2), stats.Records)
	require.Equal(t, int64(1), stats.UDFFiles)
	require.Equal(t, int64(1), stats.SecondaryIndexes)
}

func TestEncodeSnapshot_StopsOnError(t *testing.T) {
	snap := testSnapshot()
	snap.Records[0].Bins = append(snap.Records[0].Bins, model.Bin{Name: "tags", Value: model.ListValue()})

	var out bytes.Buffer
	encoder, err := NewTextEncoder(&out)
	require.NoError(t, err)

	n, err := EncodeSnapshot(encoder, snap, NewBinFilter("name", "age", "tags"))
	require.ErrorIs(t, err, errs.ErrUnexpectedList)
	require.Contains(t, err.Error(), "record 0")
	require.Equal(t, int64(out.Len()), n)
	require.Equal(t, int64(0), encoder.Stats().Records)
}
