package netx

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeMultipart_FieldsAndFile(t *testing.T) {
	body, contentType, err := EncodeMultipart(
		map[string]string{"name": "Business cards", "price": "500"},
		"image", "card.png", []byte{0x89, 0x50, 0x4e, 0x47},
	)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	got := map[string][]byte{}
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		got[part.FormName()] = data
	}

	require.Equal(t, []byte("Business cards"), got["name"])
	require.Equal(t, []byte("500"), got["price"])
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got["image"])
}

func TestEncodeMultipart_NoFilePartWhenImageNil(t *testing.T) {
	body, contentType, err := EncodeMultipart(map[string]string{"name": "Flyers"}, "image", "x.png", nil)
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	names := []string{}
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, part.FormName())
	}
	require.Equal(t, []string{"name"}, names)
}
