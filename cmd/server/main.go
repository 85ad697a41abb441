package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifedesk/lifedesk-api/internal/config"
	"github.com/lifedesk/lifedesk-api/internal/database"
	"github.com/lifedesk/lifedesk-api/internal/handlers"
	"github.com/lifedesk/lifedesk-api/internal/middleware"
	"github.com/lifedesk/lifedesk-api/internal/services"
	"github.com/lifedesk/lifedesk-api/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load the record store
	st, err := store.New(db)
	if err != nil {
		log.Fatalf("Failed to load record store: %v", err)
	}

	// Initialize services
	taskService := services.NewTaskService(st)
	projectService := services.NewProjectService(st)
	habitService := services.NewHabitService(st)
	noteService := services.NewNoteService(st)
	financeService := services.NewFinanceService(st)
	storyService := services.NewStoryService(st)
	shayariService := services.NewShayariService(st)
	canvaService := services.NewCanvaService(st)
	dashboardService := services.NewDashboardService(st)

	// Start the recurrence sweep, stopped on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := services.NewRecurrenceEngine(taskService, time.Duration(cfg.SweepIntervalSeconds)*time.Second)
	go engine.Run(ctx)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	projectHandler := handlers.NewProjectHandler(projectService)
	habitHandler := handlers.NewHabitHandler(habitService)
	noteHandler := handlers.NewNoteHandler(noteService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	storyHandler := handlers.NewStoryHandler(storyService)
	shayariHandler := handlers.NewShayariHandler(shayariService)
	canvaHandler := handlers.NewCanvaHandler(canvaService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "LifeDesk API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/toggle", taskHandler.ToggleTask)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		habits := api.Group("/habits")
		{
			habits.GET("", habitHandler.ListHabits)
			habits.POST("", habitHandler.CreateHabit)
			habits.GET("/:id", habitHandler.GetHabit)
			habits.PATCH("/:id", habitHandler.UpdateHabit)
			habits.DELETE("/:id", habitHandler.DeleteHabit)
			habits.POST("/:id/increment", habitHandler.IncrementStreak)
			habits.POST("/:id/decrement", habitHandler.DecrementStreak)
			habits.POST("/:id/reset", habitHandler.ResetStreak)
		}

		notes := api.Group("/notes")
		{
			notes.GET("", noteHandler.ListNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.GET("/:id", noteHandler.GetNote)
			notes.PATCH("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", financeHandler.ListExpenses)
			expenses.POST("", financeHandler.CreateExpense)
			expenses.PATCH("/:id", financeHandler.UpdateExpense)
			expenses.DELETE("/:id", financeHandler.DeleteExpense)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", financeHandler.ListTransactions)
			transactions.POST("", financeHandler.CreateTransaction)
			transactions.PATCH("/:id", financeHandler.UpdateTransaction)
			transactions.DELETE("/:id", financeHandler.DeleteTransaction)
		}

		budgets := api.Group("/budgets")
		{
			budgets.GET("", financeHandler.ListFixedBudgets)
			budgets.POST("", financeHandler.CreateFixedBudget)
			budgets.PATCH("/:id", financeHandler.UpdateFixedBudget)
			budgets.DELETE("/:id", financeHandler.DeleteFixedBudget)
		}

		fixedExpenses := api.Group("/fixed-expenses")
		{
			fixedExpenses.GET("", financeHandler.ListFixedExpenses)
			fixedExpenses.POST("", financeHandler.CreateFixedExpense)
			fixedExpenses.PATCH("/:id", financeHandler.UpdateFixedExpense)
			fixedExpenses.DELETE("/:id", financeHandler.DeleteFixedExpense)
		}

		stories := api.Group("/stories")
		{
			stories.GET("", storyHandler.ListStories)
			stories.POST("", storyHandler.CreateStory)
			stories.GET("/:id", storyHandler.GetStory)
			stories.PATCH("/:id", storyHandler.UpdateStory)
			stories.DELETE("/:id", storyHandler.DeleteStory)
		}

		scenes := api.Group("/scenes")
		{
			scenes.GET("", storyHandler.ListScenes)
			scenes.POST("", storyHandler.CreateScene)
			scenes.GET("/:id", storyHandler.GetScene)
			scenes.PATCH("/:id", storyHandler.UpdateScene)
			scenes.DELETE("/:id", storyHandler.DeleteScene)
		}

		shayaris := api.Group("/shayaris")
		{
			shayaris.GET("", shayariHandler.ListShayaris)
			shayaris.POST("", shayariHandler.CreateShayari)
			shayaris.GET("/:id", shayariHandler.GetShayari)
			shayaris.PATCH("/:id", shayariHandler.UpdateShayari)
			shayaris.DELETE("/:id", shayariHandler.DeleteShayari)
		}

		rekhta := api.Group("/rekhta")
		{
			rekhta.GET("", shayariHandler.ListRekhta)
			rekhta.POST("", shayariHandler.CreateRekhta)
			rekhta.DELETE("/:id", shayariHandler.DeleteRekhta)
		}

		canva := api.Group("/canva")
		{
			canva.GET("/fonts", canvaHandler.ListFonts)
			canva.POST("/fonts", canvaHandler.CreateFont)
			canva.PUT("/fonts/:id", canvaHandler.UpdateFont)
			canva.DELETE("/fonts/:id", canvaHandler.DeleteFont)

			canva.GET("/apps", canvaHandler.ListApps)
			canva.POST("/apps", canvaHandler.CreateApp)
			canva.PUT("/apps/:id", canvaHandler.UpdateApp)
			canva.DELETE("/apps/:id", canvaHandler.DeleteApp)

			canva.GET("/ideas", canvaHandler.ListIdeas)
			canva.POST("/ideas", canvaHandler.CreateIdea)
			canva.PUT("/ideas/:id", canvaHandler.UpdateIdea)
			canva.DELETE("/ideas/:id", canvaHandler.DeleteIdea)

			canva.GET("/links", canvaHandler.ListLinks)
			canva.POST("/links", canvaHandler.CreateLink)
			canva.PUT("/links/:id", canvaHandler.UpdateLink)
			canva.DELETE("/links/:id", canvaHandler.DeleteLink)
		}

		api.GET("/dashboard", dashboardHandler.GetSummary)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
