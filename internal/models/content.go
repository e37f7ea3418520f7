package models

import "time"

// TopicContent is a generated lesson stored under
// topic-content:{userId}:{moduleId}:{topic}. Immutable once written; the key
// acts as a permanent cache that is never invalidated.
type TopicContent struct {
	Topic         string         `json:"topic"`
	ModuleID      string         `json:"moduleId"`
	ModuleTitle   string         `json:"moduleTitle"`
	Difficulty    string         `json:"difficulty"`
	Explanation   string         `json:"explanation"`
	KeyPoints     []string       `json:"keyPoints"`
	Applications  []string       `json:"applications"`
	Pitfalls      []string       `json:"pitfalls"`
	PracticeIdeas []string       `json:"practiceIdeas"`
	YoutubeVideos []YoutubeVideo `json:"youtubeVideos"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}

// YoutubeVideo is a passive search reference built from a model-suggested
// query; no video API is called.
type YoutubeVideo struct {
	Title     string `json:"title"`
	SearchURL string `json:"searchUrl"`
}
