package renderer

import (
	"StillLife3D/internal/logger"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// MaxSceneTextureUnits is the number of texture units the scene assumes the
// hardware provides. The registry itself is unbounded; exceeding this only
// means later entries cannot all be bound at once.
const MaxSceneTextureUnits = 16

// TextureEntry associates a tag with an uploaded GL texture handle. Entries
// are kept in insertion order; the slot index equals the insertion index.
type TextureEntry struct {
	Tag    string
	Handle uint32
}

// TextureUploader isolates the GL calls the registry needs, so registry
// bookkeeping can be exercised without a rendering context.
type TextureUploader interface {
	Upload(rgba *image.RGBA) uint32
	Bind(slot int32, handle uint32)
	Delete(handle uint32)
}

type glTextureUploader struct{}

func (glTextureUploader) Upload(rgba *image.RGBA) uint32 {
	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return handle
}

func (glTextureUploader) Bind(slot int32, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (glTextureUploader) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}

// TextureRegistry maps tags to uploaded textures, preserving insertion
// order so each texture has a stable texture-unit slot.
type TextureRegistry struct {
	entries  []TextureEntry
	index    map[string]int
	uploader TextureUploader
}

// NewTextureRegistry creates a registry backed by the OpenGL uploader.
func NewTextureRegistry() *TextureRegistry {
	return newTextureRegistry(glTextureUploader{})
}

func newTextureRegistry(uploader TextureUploader) *TextureRegistry {
	return &TextureRegistry{
		index:    make(map[string]int),
		uploader: uploader,
	}
}

// Load decodes an image file, uploads it as a repeat-wrapped, linearly
// filtered, mipmapped 2D texture and registers it under tag. Images that are
// not 3- or 4-channel are rejected. On any failure nothing is registered.
func (tr *TextureRegistry) Load(path, tag string) error {
	if _, exists := tr.index[tag]; exists {
		return fmt.Errorf("texture tag %q already registered", tag)
	}

	imgFile, err := os.Open(path)
	if err != nil {
		logger.Log.Error("Could not open image", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("open image %s: %w", path, err)
	}
	defer imgFile.Close()

	img, format, err := image.Decode(imgFile)
	if err != nil {
		logger.Log.Error("Could not decode image", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("decode image %s: %w", path, err)
	}

	channels := colorChannels(img)
	if channels != 3 && channels != 4 {
		logger.Log.Error("Unsupported image channel count",
			zap.String("path", path),
			zap.Int("channels", channels))
		return fmt.Errorf("image %s has %d channels, want 3 or 4", path, channels)
	}

	// GL samples with the origin at the bottom-left corner.
	rgba := flipVertical(toRGBA(img))
	handle := tr.uploader.Upload(rgba)
	tr.register(tag, handle)

	logger.Log.Info("Texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.String("format", format),
		zap.Int("width", rgba.Rect.Size().X),
		zap.Int("height", rgba.Rect.Size().Y),
		zap.Int("channels", channels))
	return nil
}

// CreateFromImage uploads an in-memory image under tag. Used for the
// procedural placeholder texture.
func (tr *TextureRegistry) CreateFromImage(img image.Image, tag string) error {
	if _, exists := tr.index[tag]; exists {
		return fmt.Errorf("texture tag %q already registered", tag)
	}

	handle := tr.uploader.Upload(toRGBA(img))
	tr.register(tag, handle)

	logger.Log.Info("Texture created from image", zap.String("tag", tag))
	return nil
}

func (tr *TextureRegistry) register(tag string, handle uint32) {
	tr.index[tag] = len(tr.entries)
	tr.entries = append(tr.entries, TextureEntry{Tag: tag, Handle: handle})
}

// Handle returns the GL texture handle registered under tag.
func (tr *TextureRegistry) Handle(tag string) (uint32, bool) {
	i, ok := tr.index[tag]
	if !ok {
		return 0, false
	}
	return tr.entries[i].Handle, true
}

// Slot returns the texture-unit index registered under tag.
func (tr *TextureRegistry) Slot(tag string) (int32, bool) {
	i, ok := tr.index[tag]
	if !ok {
		return 0, false
	}
	return int32(i), true
}

func (tr *TextureRegistry) Count() int {
	return len(tr.entries)
}

// BindAll rebinds every registered texture to its slot index.
func (tr *TextureRegistry) BindAll() {
	if len(tr.entries) > MaxSceneTextureUnits {
		logger.Log.Warn("More textures than assumed texture units",
			zap.Int("textures", len(tr.entries)),
			zap.Int("units", MaxSceneTextureUnits))
	}
	for i, entry := range tr.entries {
		tr.uploader.Bind(int32(i), entry.Handle)
	}
}

// Destroy releases every registered GL texture and empties the registry.
func (tr *TextureRegistry) Destroy() {
	for _, entry := range tr.entries {
		tr.uploader.Delete(entry.Handle)
	}
	released := len(tr.entries)
	tr.entries = nil
	tr.index = make(map[string]int)

	logger.Log.Info("Texture registry destroyed", zap.Int("released", released))
}

// colorChannels reports the channel count of the decoded representation,
// mirroring what stb-style loaders report for the same files.
func colorChannels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.CMYK:
		return 4
	default:
		// NRGBA, RGBA, NYCbCrA, Paletted and friends all decode to RGBA.
		return 4
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

func flipVertical(rgba *image.RGBA) *image.RGBA {
	width, height := rgba.Rect.Dx(), rgba.Rect.Dy()
	flipped := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowLen]
		dst := flipped.Pix[(height-1-y)*flipped.Stride:]
		copy(dst[:rowLen], src)
	}
	return flipped
}
