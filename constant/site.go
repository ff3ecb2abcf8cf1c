package constant

// Player names reported by the site adapters.
const (
	YouTube      = "YouTube"
	YouTubeMusic = "YouTube Music"
)

// Thumbnail hosts and layouts used when resolving cover art.
const (
	ThumbnailHost    = "https://i.ytimg.com"
	ThumbnailMaxRes  = "maxresdefault.jpg"
	ThumbnailMedium  = "mqdefault.jpg"
	ThumbnailMinEdge = 90
)

// YouTubeLoopPlaylistPath is the icon path of the playlist loop button while the whole playlist
// loops.
const YouTubeLoopPlaylistPath = "M20,14h2v5L5.84,19.02l1.77,1.77l-1.41,1.41L1.99,18l4.21-4.21l1.41,1.41l-1.82,1.82L20,17V14z M4,7l14.21-0.02l-1.82,1.82 l1.41,1.41L22.01,6l-4.21-4.21l-1.41,1.41l1.77,1.77L2,5v6h2V7z"
