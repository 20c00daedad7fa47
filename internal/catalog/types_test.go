package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcategoryRef_unmarshalBareID(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"id": "p1", "main_subcategory": "sub-42"}`), &item)
	require.NoError(t, err)
	require.NotNil(t, item.MainSubcategory)
	assert.Equal(t, "sub-42", item.MainSubcategory.ID)
	assert.Equal(t, "", item.MainSubcategory.Title)
}

func TestSubcategoryRef_unmarshalEmbeddedObject(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"id": "p1", "main_subcategory": {"id": "sub-42", "title": "Sucos"}}`), &item)
	require.NoError(t, err)
	require.NotNil(t, item.MainSubcategory)
	assert.Equal(t, "sub-42", item.MainSubcategory.ID)
	assert.Equal(t, "Sucos", item.MainSubcategory.Title)
}

func TestSubcategoryRef_unmarshalNull(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"id": "p1", "main_subcategory": null}`), &item)
	require.NoError(t, err)
	assert.Nil(t, item.MainSubcategory)
}

func TestImages_bannerURL(t *testing.T) {
	images := Images{BaseURL: "https://ibassets.com.br"}
	assert.Equal(t,
		"https://ibassets.com.br/ib.store.banner/bnr-home.jpg",
		images.BannerURL("home.jpg"))
}

func TestImages_productURL(t *testing.T) {
	images := Images{BaseURL: "https://ibassets.com.br"}

	tests := []struct {
		size string
		want string
	}{
		{ImageSmall, "https://ibassets.com.br/ib.item.image.small/s-foto.jpg"},
		{ImageMedium, "https://ibassets.com.br/ib.item.image.medium/m-foto.jpg"},
		{ImageBig, "https://ibassets.com.br/ib.item.image.big/b-foto.jpg"},
		{ImageLarge, "https://ibassets.com.br/ib.item.image.large/l-foto.jpg"},
		// unknown and empty sizes fall back to medium
		{"gigante", "https://ibassets.com.br/ib.item.image.medium/m-foto.jpg"},
		{"", "https://ibassets.com.br/ib.item.image.medium/m-foto.jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, images.ProductURL("foto.jpg", tt.size), "size %q", tt.size)
	}
}
