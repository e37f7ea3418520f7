package store

import "fmt"

// Key builders for the per-user record partitions. The user id is the
// partition key of every record type; no handler reads or writes outside the
// authenticated user's partition.

func ProfileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

func RoadmapKey(userID string) string {
	return fmt.Sprintf("roadmap:%s", userID)
}

func ProgressKey(userID, moduleID string) string {
	return fmt.Sprintf("progress:%s:%s", userID, moduleID)
}

func ProgressPrefix(userID string) string {
	return fmt.Sprintf("progress:%s:", userID)
}

func TopicContentKey(userID, moduleID, topic string) string {
	return fmt.Sprintf("topic-content:%s:%s:%s", userID, moduleID, topic)
}

func ChatKey(userID string) string {
	return fmt.Sprintf("chat:%s", userID)
}

func AssessmentKey(userID, moduleID string, unixMillis int64) string {
	return fmt.Sprintf("assessment:%s:%s:%d", userID, moduleID, unixMillis)
}

func ChallengeKey(userID, challengeID string) string {
	return fmt.Sprintf("challenge:%s:%s", userID, challengeID)
}

func AchievementsKey(userID string) string {
	return fmt.Sprintf("achievements:%s", userID)
}
