package routes

import (
	"stagepass/artists"
	"stagepass/auth"
	"stagepass/events"
	"stagepass/middleware"
	"stagepass/ratelim"
	"stagepass/spotifysync"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/signup", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.GET("/api/auth/profile", middleware.Authenticate(auth.GetProfile))
	router.PUT("/api/auth/profile", middleware.Authenticate(auth.UpdateProfile))
}

func AddArtistRoutes(router *httprouter.Router) {
	router.GET("/api/artists/followed", middleware.OptionalAuth(artists.GetFollowedArtists))
}

func AddEventRoutes(router *httprouter.Router, h *events.Handler) {
	router.GET("/api/events/feeds", middleware.OptionalAuth(h.Feeds))
	router.GET("/api/events/followed", middleware.OptionalAuth(h.Followed))
	router.GET("/api/events/recommended", middleware.OptionalAuth(h.Recommended))
	router.GET("/api/events/artist", middleware.OptionalAuth(h.ArtistEvents))
	router.GET("/api/events/search", ratelim.RateLimit(middleware.OptionalAuth(h.Search)))
	router.GET("/api/events/detail", middleware.OptionalAuth(h.Detail))
	router.POST("/api/events/favorite", middleware.Authenticate(h.Favorite))
}

func AddSyncRoutes(router *httprouter.Router, h *spotifysync.Handler) {
	router.GET("/api/spotify/login", ratelim.RateLimit(h.Login))
	router.GET("/api/spotify/callback", h.Callback)
}
