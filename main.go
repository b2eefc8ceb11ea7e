package main

import (
	"log"
	"net/http"
	"os"

	"community-api/config"
	"community-api/handlers"
	"community-api/helper"
	"community-api/middleware"
	"community-api/repositories"
	"community-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()
	config.SeedRoles(db)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	communityRepo := repositories.NewCommunityRepository(db)
	memberRepo := repositories.NewMemberRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	roleService := services.NewRoleService(roleRepo)
	communityService := services.NewCommunityService(communityRepo, memberRepo, roleRepo, userRepo)
	memberService := services.NewMemberService(memberRepo, communityRepo, userRepo, roleRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	roleHandler := handlers.NewRoleHandler(roleService, httpHelper)
	communityHandler := handlers.NewCommunityHandler(communityService, httpHelper)
	memberHandler := handlers.NewMemberHandler(memberService, httpHelper)

	// Setup router
	router := gin.Default()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin", authHandler.Signin)
			auth.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
		}

		role := v1.Group("/role")
		{
			role.POST("", middleware.AuthMiddleware(), roleHandler.CreateRole)
			role.GET("", roleHandler.GetRoles)
		}

		community := v1.Group("/community")
		{
			community.POST("", middleware.AuthMiddleware(), communityHandler.CreateCommunity)
			community.GET("", communityHandler.GetCommunities)
			community.GET("/:id/members", communityHandler.GetCommunityMembers)
		}

		// Listings scoped to the signed-in user. These live under /me
		// because gin's router does not allow a static segment next to
		// the :id wildcard above.
		me := v1.Group("/me", middleware.AuthMiddleware())
		{
			me.GET("/community/owner", communityHandler.GetOwnedCommunities)
			me.GET("/community/member", communityHandler.GetJoinedCommunities)
		}

		member := v1.Group("/member", middleware.AuthMiddleware())
		{
			member.POST("", memberHandler.AddMember)
			member.DELETE("/:id", memberHandler.RemoveMember)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
