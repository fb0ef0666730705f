package main

import (
	"concierge/database"
	"concierge/internal/utils"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")

	cleanupCmd := flag.NewFlagSet("cleanup", flag.ExitOnError)

	if len(os.Args) < 2 {
		fmt.Println("Usage: seed <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  seed     Create demo users with lifestyle profiles")
		fmt.Println("  cleanup  Remove demo users")
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		if err := seedCmd.Parse(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		if err := utils.SeedDemoUsers(database.DB, *numUsers); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		fmt.Printf("Seeded %d demo users\n", *numUsers)
	case "cleanup":
		if err := cleanupCmd.Parse(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		if err := utils.CleanupDemoUsers(database.DB); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Println("Demo users removed")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}
