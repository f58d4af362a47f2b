package pipeline

import (
	"context"
	"fmt"

	"github.com/WJZ-P/CommitCraft/pkg/cache"
	"github.com/WJZ-P/CommitCraft/pkg/integrations"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/styles"
)

// TextureFiles lists every texture file referenced by a material.
func TextureFiles() []string {
	seen := make(map[string]bool)
	var files []string
	for _, m := range material.All() {
		info := m.Info()
		for _, f := range []string{info.TopFile, info.SideFile} {
			if f != "" && !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files
}

// FetchTextures downloads every texture from base so a document can embed
// them as data URIs and render offline. Downloads go through the runner's
// cache with the artifact TTL.
func (r *Runner) FetchTextures(ctx context.Context, base string) (map[string][]byte, error) {
	src := styles.TextureSource{Base: base}
	if src.Base == "" {
		src.Base = styles.DefaultTextureBase
	}
	client := integrations.NewClient(r.Cache, "texture", cache.ArtifactTTL, nil)
	client.SetKeyer(r.Keyer)

	out := make(map[string][]byte)
	for _, file := range TextureFiles() {
		url := src.Href(file)
		var data []byte
		err := client.Cached(ctx, url, false, &data, func() error {
			body, err := client.GetText(ctx, url)
			if err != nil {
				return err
			}
			data = []byte(body)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("fetch texture %s: %w", file, err)
		}
		out[file] = data
	}
	r.Logger.Debug("fetched textures", "count", len(out), "base", src.Base)
	return out, nil
}
