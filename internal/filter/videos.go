package filter

import (
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

// VideoState is the video filter selection.
type VideoState struct {
	SearchQuery string               `json:"search_query"`
	Audience    models.AudienceLevel `json:"audience"`
}

// DefaultVideoState selects every video.
func DefaultVideoState() VideoState {
	return VideoState{Audience: models.AudienceAll}
}

// Videos returns the videos visible under s. A specific audience matches the video level exactly;
// search covers title, description and category.
func Videos(videos []models.Video, s VideoState) []models.Video {
	query := lower(shared.NormalizeSearch(s.SearchQuery))
	audience := s.Audience
	if !audience.Valid() {
		audience = models.AudienceAll
	}

	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if audience != models.AudienceAll && v.Level != audience {
			continue
		}
		if !MatchesSearch(query, v.Title, v.Description, []string{v.Category}) {
			continue
		}
		out = append(out, v)
	}
	return out
}
