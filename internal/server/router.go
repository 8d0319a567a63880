// Package server wires services and handlers into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "budgetwise/internal/docs" // swagger docs
	"budgetwise/internal/handlers"
	"budgetwise/internal/middleware"
	"budgetwise/internal/services"
	"budgetwise/internal/validator"
)

// NewRouter builds the API router. Every budget write goes through writer,
// which serializes operations per user.
func NewRouter(db *gorm.DB, writer *services.Writer) *gin.Engine {
	validator.Register()

	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	budgetService := services.NewBudgetService(writer)
	accountService := services.NewAccountService(writer)
	groupService := services.NewCategoryGroupService(writer)
	categoryService := services.NewCategoryService(writer)
	assignmentService := services.NewAssignmentService(writer)
	balanceService := services.NewCategoryBalanceService(writer, assignmentService)
	autoAssignService := services.NewAutoAssignService(writer)
	transactionService := services.NewTransactionService(writer)

	authHandler := handlers.NewAuthHandler(userService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	groupHandler := handlers.NewCategoryGroupHandler(groupService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, assignmentService, auditService)
	balanceHandler := handlers.NewCategoryBalanceHandler(balanceService, auditService)
	autoAssignHandler := handlers.NewAutoAssignHandler(autoAssignService, assignmentService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.RouteNotFound)

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.PATCH("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/ready-to-assign", budgetHandler.GetReadyToAssign)

	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("/budget/:budgetId", accountHandler.GetBudgetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PATCH("/:id", accountHandler.UpdateAccount)

	groups := protected.Group("/category-groups")
	groups.POST("", groupHandler.CreateGroup)
	groups.GET("", groupHandler.GetBudgetGroups)
	groups.POST("/reorder", groupHandler.ReorderGroups)
	groups.PATCH("/:id", groupHandler.UpdateGroup)
	groups.DELETE("/:id", groupHandler.DeleteGroup)
	groups.PATCH("/:id/hide", groupHandler.HideGroup)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetGroupCategories)
	categories.GET("/budget/:budgetId", categoryHandler.GetBudgetCategories)
	categories.POST("/reorder", categoryHandler.ReorderCategories)
	categories.POST("/move-money", categoryHandler.MoveMoney)
	categories.POST("/move-to-rta", categoryHandler.MoveToReadyToAssign)
	categories.POST("/pull-from-rta", categoryHandler.PullFromReadyToAssign)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	categories.GET("/:id/debt-summary", categoryHandler.GetDebtSummary)

	balances := protected.Group("/category-balances")
	balances.GET("/category/:categoryId", balanceHandler.GetBalance)
	balances.PATCH("/category/:categoryId", balanceHandler.UpdateBalance)
	balances.POST("/ensure/:budgetId", balanceHandler.EnsureMonth)

	autoAssign := protected.Group("/auto-assign")
	autoAssign.POST("", autoAssignHandler.CreateConfig)
	autoAssign.POST("/apply", autoAssignHandler.Apply)
	autoAssign.GET("/budget/:budgetId", autoAssignHandler.GetBudgetConfigs)
	autoAssign.GET("/budget/:budgetId/config/:name", autoAssignHandler.GetConfig)
	autoAssign.PATCH("/budget/:budgetId/config/:name", autoAssignHandler.UpdateConfig)
	autoAssign.DELETE("/budget/:budgetId/config/:name", autoAssignHandler.DeleteConfig)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/transfer", transactionHandler.CreateTransfer)
	transactions.GET("/account/:id", transactionHandler.GetAccountTransactions)
	transactions.GET("/budget/:id", transactionHandler.GetBudgetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.PATCH("/:id/toggle-cleared", transactionHandler.ToggleCleared)

	return router
}
