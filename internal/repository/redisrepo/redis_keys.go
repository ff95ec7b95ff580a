package redisrepo

import "fmt"

// Cached post keys embed POSTS_VERSION_KEY's value. Every post mutation bumps
// it, so a fill racing a mutation lands under a version nobody reads anymore.
const (
	POSTS_VERSION_KEY   = "posts:version"
	PUBLISHED_POSTS_KEY = "posts:%d:published" // <version>
	PUBLISHED_POST_KEY  = "posts:%d:post:%s"   // <version>:<postID>
)

func PostsVersionKey() string {
	return POSTS_VERSION_KEY
}

func PublishedPostsKey(version int64) string {
	return fmt.Sprintf(PUBLISHED_POSTS_KEY, version)
}

func PublishedPostKey(version int64, postID string) string {
	return fmt.Sprintf(PUBLISHED_POST_KEY, version, postID)
}
