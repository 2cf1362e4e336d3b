package docnodes

import (
	"regexp"
	"strings"

	"github.com/aisa-it/vaiz.go/pkg/models"
)

type EmbedSize string

const (
	EmbedSmall  EmbedSize = "small"
	EmbedMedium EmbedSize = "medium"
	EmbedLarge  EmbedSize = "large"
)

type EmbedBlockNode struct {
	UID             string
	Size            EmbedSize
	IsContentHidden bool
	Payload         EmbedPayload
}

type EmbedOption func(*EmbedBlockNode)

// WithSize размер блока, по умолчанию medium
func WithSize(size EmbedSize) EmbedOption {
	return func(b *EmbedBlockNode) { b.Size = size }
}

// ContentHidden скрывает содержимое. В payload флаг попадает только для Miro,
// для Figma он выставляется всегда.
func ContentHidden(hidden bool) EmbedOption {
	return func(b *EmbedBlockNode) { b.IsContentHidden = hidden }
}

var youtubeID = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)

// ExtractEmbedURL приводит ссылку к виду, пригодному для встраивания.
// Для GitHub Gist возвращается не ссылка, а inline data:-документ со скриптом gist.
func ExtractEmbedURL(url string, embedType models.EmbedType) string {
	switch embedType {
	case models.EmbedYouTube:
		if m := youtubeID.FindStringSubmatch(url); m != nil {
			return "https://www.youtube.com/embed/" + m[1]
		}
	case models.EmbedFigma:
		return "https://www.figma.com/embed?embed_host=share&url=" + strings.Replace(url, "/design/", "/file/", 1)
	case models.EmbedGitHubGist:
		return "data:text/html;charset=utf-8,\n" +
			"      <head><base target='_blank'/></head>\n" +
			"      <body><script src='" + url + ".js'></script>\n" +
			"      </body>"
	}
	return url
}

// EmbedBlock встраиваемый контент. Пустой embedType означает Iframe.
func EmbedBlock(url string, embedType models.EmbedType, opts ...EmbedOption) *EmbedBlockNode {
	if embedType == "" {
		embedType = models.EmbedIframe
	}
	b := &EmbedBlockNode{UID: NewUID(), Size: EmbedMedium}
	for _, opt := range opts {
		opt(b)
	}
	b.Payload = EmbedPayload{
		Type:         embedType,
		URL:          url,
		ExtractedURL: ExtractEmbedURL(url, embedType),
	}
	switch embedType {
	case models.EmbedFigma:
		b.Payload.IsContentHidden = true
	case models.EmbedMiro:
		b.Payload.IsContentHidden = b.IsContentHidden
	}
	return b
}

func (b *EmbedBlockNode) Type() NodeType { return TypeEmbed }

func (b *EmbedBlockNode) raw() RawNode {
	size := b.Size
	if size == "" {
		size = EmbedMedium
	}
	attrs := customAttrs(b.UID)
	attrs["size"] = size
	attrs["isContentHidden"] = b.IsContentHidden
	return payloadBlock(TypeEmbed, attrs, b.Payload)
}
