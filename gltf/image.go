package gltf

import (
	"github.com/headbirdgames/fastgltf/internal/base64x"
	"github.com/headbirdgames/fastgltf/internal/uri"
)

// parseImages resolves each image's source (uri XOR bufferView, per
// spec.md §4.5.4's mutual-exclusion invariant) into a DataSource.
func (p *Parser) parseImages(docImages []documentImage, baseDir string) ([]Image, error) {
	dec := base64x.New(p.cfg.useSIMD)
	out := make([]Image, 0, len(docImages))
	for i, di := range docImages {
		hasURI := di.URI != ""
		hasBufferView := di.BufferView != nil
		if hasURI == hasBufferView {
			return nil, newError(InvalidGltf, fieldAt("images", i, "uri"), nil)
		}
		img := Image{Name: di.Name, MimeType: ParseMimeType(di.MimeType)}
		if hasBufferView {
			if img.MimeType == MimeTypeNone {
				return nil, newError(InvalidGltf, fieldAt("images", i, "mimeType"), nil)
			}
			img.Source = DataSource{Kind: DataSourceBufferView, BufferViewIndex: *di.BufferView, MimeType: img.MimeType}
			img.BufferView = di.BufferView
			out = append(out, img)
			continue
		}
		resolved, err := uri.Resolve(di.URI, baseDir, dec)
		if err != nil {
			return nil, newError(InvalidGltf, fieldAt("images", i, "uri"), err)
		}
		switch resolved.Kind {
		case uri.KindVector:
			mt := img.MimeType
			if mt == MimeTypeNone {
				mt = ParseMimeType(resolved.MimeType)
			}
			img.Source = DataSource{Kind: DataSourceVector, Bytes: resolved.Data, MimeType: mt}
		case uri.KindFilePath:
			img.Source = DataSource{Kind: DataSourceFilePath, Path: resolved.Path, MimeType: img.MimeType}
		}
		out = append(out, img)
	}
	return out, nil
}

func parseSamplers(docSamplers []documentSampler) []Sampler {
	out := make([]Sampler, 0, len(docSamplers))
	for _, ds := range docSamplers {
		s := Sampler{
			MagFilter: ds.MagFilter,
			MinFilter: ds.MinFilter,
			WrapS:     WrapRepeat,
			WrapT:     WrapRepeat,
			Name:      ds.Name,
		}
		if ds.WrapS != nil {
			s.WrapS = *ds.WrapS
		}
		if ds.WrapT != nil {
			s.WrapT = *ds.WrapT
		}
		out = append(out, s)
	}
	return out
}
