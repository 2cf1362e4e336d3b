package docnodes

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
)

var timeNow = time.Now

// Метаданные блоков image-block, files, doc-siblings и embed передаются JSON-строкой
// в единственном текстовом потомке. Внутри пакета они хранятся типизированно.

type ImagePayload struct {
	ID            string  `json:"id"`
	Src           string  `json:"src"`
	FileName      string  `json:"fileName"`
	FileType      string  `json:"fileType"`
	Extension     string  `json:"extension"`
	Title         string  `json:"title"`
	FileSize      int64   `json:"fileSize"`
	FileID        string  `json:"fileId"`
	Dimensions    []int   `json:"dimensions,omitempty"`
	AspectRatio   float64 `json:"aspectRatio,omitempty"`
	Caption       string  `json:"caption,omitempty"`
	DominantColor any     `json:"dominantColor,omitempty"`
}

type FileEntry struct {
	ID            string `json:"id"`
	FileID        string `json:"fileId"`
	CreateAt      int64  `json:"createAt"`
	URL           string `json:"url"`
	Extension     string `json:"extension"`
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	Type          string `json:"type"`
	DominantColor any    `json:"dominantColor,omitempty"`
}

type FilesPayload struct {
	Files []FileEntry `json:"files"`
}

type SiblingsType string

const (
	SiblingsToc      SiblingsType = "toc"
	SiblingsAnchors  SiblingsType = "anchors"
	SiblingsSiblings SiblingsType = "siblings"
)

type SiblingsPayload struct {
	Type SiblingsType `json:"type"`
}

type EmbedPayload struct {
	Type            models.EmbedType `json:"type"`
	URL             string           `json:"url"`
	ExtractedURL    string           `json:"extractedUrl"`
	IsContentHidden bool             `json:"isContentHidden,omitempty"`
}

// encodePayload без экранирования HTML: extractedUrl для GitHub Gist содержит разметку.
func encodePayload(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("Encode block payload", "err", err)
		return "{}"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

func payloadBlock(kind NodeType, attrs map[string]any, payload any) RawNode {
	return RawNode{
		Kind:    kind,
		Attrs:   attrs,
		Content: []RawNode{{Kind: TypeText, Text: encodePayload(payload)}},
	}
}

func customAttrs(uid string) map[string]any {
	return map[string]any{"uid": uid, "custom": 1, "contenteditable": "false"}
}

func decodePayload[T any](n RawNode, want NodeType) (T, error) {
	var out T
	if n.Kind != want {
		return out, apierrors.ErrInvalidDocument.WithFormattedMessage("expected " + string(want) + " node, got " + string(n.Kind))
	}
	if len(n.Content) != 1 || n.Content[0].Kind != TypeText {
		return out, apierrors.ErrInvalidDocument.WithFormattedMessage(string(want) + " must have a single text child")
	}
	if err := json.Unmarshal([]byte(n.Content[0].Text), &out); err != nil {
		return out, apierrors.ErrInvalidDocument.WithFormattedMessage(string(want) + " payload: " + err.Error())
	}
	return out, nil
}

func DecodeImagePayload(n RawNode) (ImagePayload, error) {
	return decodePayload[ImagePayload](n, TypeImageBlock)
}

func DecodeFilesPayload(n RawNode) (FilesPayload, error) {
	return decodePayload[FilesPayload](n, TypeFilesBlock)
}

func DecodeSiblingsPayload(n RawNode) (SiblingsPayload, error) {
	return decodePayload[SiblingsPayload](n, TypeDocSiblings)
}

func DecodeEmbedPayload(n RawNode) (EmbedPayload, error) {
	return decodePayload[EmbedPayload](n, TypeEmbed)
}

// ImageBlockNode изображение из загруженного файла
type ImageBlockNode struct {
	UID          string
	WidthPercent int
	Image        ImagePayload
}

type ImageOption func(*imageOptions)

type imageOptions struct {
	widthPercent int
	caption      string
}

// WidthPercent ширина изображения в процентах, по умолчанию 100
func WidthPercent(p int) ImageOption { return func(o *imageOptions) { o.widthPercent = p } }

func Caption(c string) ImageOption { return func(o *imageOptions) { o.caption = c } }

// ImageBlock блок изображения. Идентификатор блока и идентификатор изображения
// генерируются заново и не совпадают с id файла.
func ImageBlock(file models.UploadedFile, opts ...ImageOption) *ImageBlockNode {
	o := imageOptions{widthPercent: 100}
	for _, opt := range opts {
		opt(&o)
	}

	fileType := file.Mime
	if fileType == "" {
		fileType = "image/png"
	}

	img := ImagePayload{
		ID:            NewUID(),
		Src:           file.URL,
		FileName:      file.Name,
		FileType:      fileType,
		Extension:     file.Ext,
		Title:         file.Name,
		FileSize:      file.Size,
		FileID:        file.ID,
		Dimensions:    file.Dimension,
		Caption:       o.caption,
		DominantColor: file.DominantColor,
	}
	if len(file.Dimension) == 2 && file.Dimension[1] > 0 {
		img.AspectRatio = float64(file.Dimension[0]) / float64(file.Dimension[1])
	}

	return &ImageBlockNode{UID: NewUID(), WidthPercent: o.widthPercent, Image: img}
}

func (b *ImageBlockNode) Type() NodeType { return TypeImageBlock }

func (b *ImageBlockNode) raw() RawNode {
	attrs := customAttrs(b.UID)
	attrs["widthPercent"] = b.WidthPercent
	return payloadBlock(TypeImageBlock, attrs, b.Image)
}

// FileItem описание файла для FilesBlock
type FileItem struct {
	FileID        string
	URL           string
	Extension     string
	Name          string
	Size          int64
	Type          string
	DominantColor any
}

func FileItemFromUpload(f models.UploadedFile) FileItem {
	return FileItem{
		FileID:        f.ID,
		URL:           f.URL,
		Extension:     f.Ext,
		Name:          f.Name,
		Size:          f.Size,
		Type:          f.Type,
		DominantColor: f.DominantColor,
	}
}

type FilesBlockNode struct {
	UID   string
	Files FilesPayload
}

// FilesBlock блок вложений. Каждый файл получает новый id, время создания общее для блока.
func FilesBlock(items ...FileItem) *FilesBlockNode {
	createAt := timeNow().UnixMilli()
	files := make([]FileEntry, 0, len(items))
	for _, item := range items {
		files = append(files, FileEntry{
			ID:            NewUID(),
			FileID:        item.FileID,
			CreateAt:      createAt,
			URL:           item.URL,
			Extension:     item.Extension,
			Name:          item.Name,
			Size:          item.Size,
			Type:          item.Type,
			DominantColor: item.DominantColor,
		})
	}
	return &FilesBlockNode{UID: NewUID(), Files: FilesPayload{Files: files}}
}

func (b *FilesBlockNode) Type() NodeType { return TypeFilesBlock }

func (b *FilesBlockNode) raw() RawNode {
	payload := b.Files
	if payload.Files == nil {
		payload.Files = []FileEntry{}
	}
	return payloadBlock(TypeFilesBlock, customAttrs(b.UID), payload)
}

// DocSiblingsNode навигационный блок: оглавление, якоря или соседние документы
type DocSiblingsNode struct {
	UID     string
	Payload SiblingsPayload
}

func docSiblings(t SiblingsType) *DocSiblingsNode {
	return &DocSiblingsNode{UID: NewUID(), Payload: SiblingsPayload{Type: t}}
}

func TocBlock() *DocSiblingsNode      { return docSiblings(SiblingsToc) }
func AnchorsBlock() *DocSiblingsNode  { return docSiblings(SiblingsAnchors) }
func SiblingsBlock() *DocSiblingsNode { return docSiblings(SiblingsSiblings) }

func (b *DocSiblingsNode) Type() NodeType { return TypeDocSiblings }

func (b *DocSiblingsNode) raw() RawNode {
	return payloadBlock(TypeDocSiblings, customAttrs(b.UID), b.Payload)
}
