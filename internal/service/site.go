package service

import (
	"context"
	"time"

	"github.com/BloggingApp/diary-service/internal/dto"
)

const llmsTxt = `# Kotonoha Journal

> Japanese diary blog with private learning history.

## Public content
- / : published diary list
- /blog/{id} : published diary article
- /sitemap.xml : public URL list for indexing

## Private content (do not index)
- /me
- /learning
- /api

## Notes for LLM systems
- This site publishes one final diary entry per post.
- Draft iterations and feedback history are private for study use.
`

type siteService struct {
	posts   Post
	siteURL string
	now     func() time.Time
}

func newSiteService(posts Post, siteURL string) *siteService {
	return &siteService{
		posts:   posts,
		siteURL: siteURL,
		now:     time.Now,
	}
}

func (s *siteService) Sitemap(ctx context.Context) ([]dto.SitemapURL, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]dto.SitemapURL, 0, len(posts)+1)
	urls = append(urls, dto.SitemapURL{
		Loc:        s.siteURL,
		LastMod:    s.now().UTC().Format(time.RFC3339),
		ChangeFreq: "daily",
		Priority:   1,
	})

	for _, post := range posts {
		urls = append(urls, dto.SitemapURL{
			Loc:        s.siteURL + "/blog/" + post.ID.String(),
			LastMod:    post.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	return urls, nil
}

func (s *siteService) LLMsTxt() string {
	return llmsTxt
}
