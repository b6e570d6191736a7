package recommender

import "strings"

// moodMapping translates emotion keywords found in free text into preferred
// genres. Order matters: the first keyword found in the mood text wins and
// later matches are ignored.
var moodMapping = []struct {
	keyword string
	genres  []string
}{
	{"fear", []string{"Thriller", "Horror"}},
	{"joy", []string{"Comedy", "Adventure"}},
	{"sad", []string{"Comedy", "Family"}},
	{"anger", []string{"Action", "Comedy"}},
	{"love", []string{"Romance", "Drama"}},
	{"nostalgia", []string{"Drama", "Family"}},
	{"anxiety", []string{"Fantasy", "Animation"}},
}

// MapMoodToGenres returns the preferred genre names for the first emotion
// keyword found in the mood text, searched case-insensitively as a
// substring. It returns nil when no keyword matches. The result is a
// non-authoritative hint consulted only when the caller supplies no explicit
// include genres.
func MapMoodToGenres(mood string) []string {
	lowered := strings.ToLower(mood)
	for _, entry := range moodMapping {
		if strings.Contains(lowered, entry.keyword) {
			out := make([]string, len(entry.genres))
			copy(out, entry.genres)
			return out
		}
	}
	return nil
}
