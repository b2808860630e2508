package renderer

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

type binding struct {
	slot   int32
	handle uint32
}

type fakeUploader struct {
	uploads    int
	nextHandle uint32
	bound      []binding
	deleted    []uint32
}

func (f *fakeUploader) Upload(rgba *image.RGBA) uint32 {
	f.uploads++
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeUploader) Bind(slot int32, handle uint32) {
	f.bound = append(f.bound, binding{slot: slot, handle: handle})
}

func (f *fakeUploader) Delete(handle uint32) {
	f.deleted = append(f.deleted, handle)
}

func writeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return path
}

func writeGrayPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestLoadRegistersTexture(t *testing.T) {
	uploader := &fakeUploader{}
	registry := newTextureRegistry(uploader)
	path := writeJPEG(t, t.TempDir(), "wood.jpg")

	if err := registry.Load(path, "woodTexture"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if registry.Count() != 1 {
		t.Errorf("expected 1 entry, got %d", registry.Count())
	}
	if handle, ok := registry.Handle("woodTexture"); !ok || handle == 0 {
		t.Errorf("Handle = (%d, %v), want registered non-zero handle", handle, ok)
	}
	if slot, ok := registry.Slot("woodTexture"); !ok || slot != 0 {
		t.Errorf("Slot = (%d, %v), want (0, true)", slot, ok)
	}
}

func TestLoadRejectsGrayscale(t *testing.T) {
	uploader := &fakeUploader{}
	registry := newTextureRegistry(uploader)
	path := writeGrayPNG(t, t.TempDir(), "gray.png")

	if err := registry.Load(path, "gray"); err == nil {
		t.Fatal("expected error for 1-channel image")
	}

	if registry.Count() != 0 {
		t.Errorf("failed load should register nothing, got %d entries", registry.Count())
	}
	if uploader.uploads != 0 {
		t.Errorf("failed load should not upload, got %d uploads", uploader.uploads)
	}
}

func TestLoadMissingFile(t *testing.T) {
	registry := newTextureRegistry(&fakeUploader{})

	if err := registry.Load(filepath.Join(t.TempDir(), "nope.jpg"), "missing"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if registry.Count() != 0 {
		t.Errorf("expected empty registry, got %d entries", registry.Count())
	}
}

func TestLoadDuplicateTag(t *testing.T) {
	registry := newTextureRegistry(&fakeUploader{})
	dir := t.TempDir()
	path := writeJPEG(t, dir, "wood.jpg")

	if err := registry.Load(path, "woodTexture"); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	if err := registry.Load(path, "woodTexture"); err == nil {
		t.Fatal("expected error for duplicate tag")
	}
	if registry.Count() != 1 {
		t.Errorf("duplicate load should not grow registry, got %d entries", registry.Count())
	}
}

func TestLookupUnregisteredTag(t *testing.T) {
	registry := newTextureRegistry(&fakeUploader{})

	if _, ok := registry.Handle("nope"); ok {
		t.Error("Handle should report not found for unregistered tag")
	}
	if _, ok := registry.Slot("nope"); ok {
		t.Error("Slot should report not found for unregistered tag")
	}
}

func TestSlotMatchesInsertionOrder(t *testing.T) {
	registry := newTextureRegistry(&fakeUploader{})
	path := writeJPEG(t, t.TempDir(), "wood.jpg")

	if err := registry.Load(path, "first"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := registry.CreateFromImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), "second"); err != nil {
		t.Fatalf("CreateFromImage failed: %v", err)
	}

	for i, tag := range []string{"first", "second"} {
		slot, ok := registry.Slot(tag)
		if !ok || slot != int32(i) {
			t.Errorf("Slot(%q) = (%d, %v), want (%d, true)", tag, slot, ok, i)
		}
	}
}

func TestBindAllBindsEverySlot(t *testing.T) {
	uploader := &fakeUploader{}
	registry := newTextureRegistry(uploader)

	if err := registry.CreateFromImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), "a"); err != nil {
		t.Fatalf("CreateFromImage failed: %v", err)
	}
	if err := registry.CreateFromImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), "b"); err != nil {
		t.Fatalf("CreateFromImage failed: %v", err)
	}

	registry.BindAll()

	if len(uploader.bound) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(uploader.bound))
	}
	for i, b := range uploader.bound {
		if b.slot != int32(i) {
			t.Errorf("binding %d bound to slot %d", i, b.slot)
		}
	}
}

func TestDestroyReleasesHandles(t *testing.T) {
	uploader := &fakeUploader{}
	registry := newTextureRegistry(uploader)

	if err := registry.CreateFromImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), "a"); err != nil {
		t.Fatalf("CreateFromImage failed: %v", err)
	}
	if err := registry.CreateFromImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), "b"); err != nil {
		t.Fatalf("CreateFromImage failed: %v", err)
	}

	registry.Destroy()

	if len(uploader.deleted) != 2 {
		t.Errorf("expected 2 released handles, got %d", len(uploader.deleted))
	}
	if registry.Count() != 0 {
		t.Errorf("expected empty registry after Destroy, got %d entries", registry.Count())
	}
	if _, ok := registry.Handle("a"); ok {
		t.Error("destroyed texture should not resolve")
	}

	// A second Destroy must not release anything twice.
	registry.Destroy()
	if len(uploader.deleted) != 2 {
		t.Errorf("second Destroy released again: %d total deletes", len(uploader.deleted))
	}
}

func TestColorChannels(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		want int
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 2, 2)), 1},
		{"gray16", image.NewGray16(image.Rect(0, 0, 2, 2)), 1},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), 3},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 2, 2)), 4},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 2, 2)), 4},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 2, 2)), 4},
	}

	for _, tc := range cases {
		if got := colorChannels(tc.img); got != tc.want {
			t.Errorf("colorChannels(%s) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 20, A: 255})

	flipped := flipVertical(img)

	if flipped.RGBAAt(0, 0).R != 20 || flipped.RGBAAt(0, 1).R != 10 {
		t.Errorf("rows not swapped: top=%d bottom=%d", flipped.RGBAAt(0, 0).R, flipped.RGBAAt(0, 1).R)
	}
}
