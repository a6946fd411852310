package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"userservice/internal/config"
	"userservice/internal/database"
	"userservice/internal/handlers"
	"userservice/internal/middleware"
	"userservice/internal/repository"
	"userservice/internal/usecase"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("⚠️ user index warning: %v", err)
	}
	if err := database.EnsureAddressIndexes(db); err != nil {
		log.Printf("⚠️ address index warning: %v", err)
	}

	users := repository.NewMongoUserRepository(db)
	addresses := repository.NewMongoAddressRepository(db)

	createUser := usecase.NewCreateUser(users)
	getUser := usecase.NewGetUser(users)
	updateUser := usecase.NewUpdateUser(users)
	deleteUser := usecase.NewDeleteUser(users)
	addAddress := usecase.NewAddAddress(addresses, users)

	r := gin.Default()

	r.POST("/users", handlers.CreateUser(createUser))
	r.GET("/users", handlers.GetUsers(users))
	r.GET("/users/:userId", handlers.GetUser(getUser))
	r.GET("/users/by-email/:email", handlers.GetUserByEmail(users))

	authed := r.Group("/")
	authed.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		authed.PUT("/users/:userId", handlers.UpdateUser(updateUser))
		authed.PUT("/users/:userId/status", handlers.UpdateUserStatus(users))
		authed.PUT("/users/:userId/profile-image", handlers.UpdateProfileImage(users))
		authed.DELETE("/users/:userId", handlers.DeleteUser(deleteUser))

		authed.POST("/users/:userId/addresses", handlers.AddAddress(addAddress))
		authed.GET("/users/:userId/addresses", handlers.GetUserAddresses(addresses, users))
		authed.PUT("/users/:userId/addresses/:addressId/default", handlers.SetDefaultAddress(addresses, users))

		authed.GET("/addresses/:addressId", handlers.GetAddress(addresses))
		authed.PUT("/addresses/:addressId", handlers.UpdateAddress(addresses))
		authed.DELETE("/addresses/:addressId", handlers.DeleteAddress(addresses))
	}

	r.Run(":" + config.AppEnv.Port)
}
