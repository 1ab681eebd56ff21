package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/Atlas-Ticaret/atlas-backoffice/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a back-office account and, with -demo, fills the database with
// sample data so the dashboard has something to show on first run.
// Usage: go run cmd/seed/main.go [-demo]
// This is a standalone CLI tool, not part of the main application
func main() {
	demo := flag.Bool("demo", false, "also insert sample orders, products, customers and campaigns")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ATLAS TİCARET - Back-Office Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.Load()
	ctx := context.Background()

	db, err := config.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	pool, err := config.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer pool.Close()
	log.Println("✓ Connected to databases")

	if err := db.AutoMigrate(
		&models.User{},
		&models.CashFlowEntry{},
		&models.Order{},
		&models.OrderItem{},
		&models.Product{},
		&models.Customer{},
		&models.Campaign{},
		&models.Influencer{},
		&models.GeneratedContent{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := createLoginTables(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema is up to date")

	email, password, name := getAccountCredentials()

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ Account with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	user := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: &passwordHash,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create account: %v", err)
	}

	if *demo {
		if err := seedDemoData(db, user.ID); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("✓ Demo data inserted")
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Account Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", user.ID)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Open the dashboard at the frontend URL")
	fmt.Println()
}

// getAccountCredentials prompts for account details
func getAccountCredentials() (email, password, name string) {
	fmt.Println("Enter Account Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) >= 8 {
			break
		}
		fmt.Println("❌ Password must be at least 8 characters")
	}
	return email, password, name
}

// createLoginTables creates the login audit tables. These are written with raw
// SQL at runtime and stay outside the GORM models.
func createLoginTables(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS login_events (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			logged_in_at TIMESTAMPTZ NOT NULL,
			ip_address TEXT,
			user_agent TEXT,
			device_type TEXT,
			browser TEXT,
			os TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_login_events_user ON login_events (user_id, logged_in_at DESC)`,
		`CREATE TABLE IF NOT EXISTS login_failures (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL,
			attempted_at TIMESTAMPTZ NOT NULL,
			ip_address TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_login_failures_email ON login_failures (email, attempted_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedDemoData inserts a small but connected data set: products referenced by
// order items, customers matching the order emails, a campaign per status and
// a few cash-flow entries around today.
func seedDemoData(db *gorm.DB, userID uuid.UUID) error {
	today := models.NewDay(time.Now())

	products := []models.Product{
		{UserID: userID, Name: "Pamuklu Tişört", Price: 29990, Cost: 12000, Stock: 140, Barcode: "8690000000011", Category: "Giyim"},
		{UserID: userID, Name: "Deri Cüzdan", Price: 84950, Cost: 41000, Stock: 8, Barcode: "8690000000028", Category: "Aksesuar"},
		{UserID: userID, Name: "Seramik Kupa", Price: 19990, Cost: 7500, Stock: 0, Barcode: "8690000000035", Category: "Ev"},
		{UserID: userID, Name: "Keten Gömlek", Price: 64990, Cost: 28000, Stock: 52, Barcode: "8690000000042", Category: "Giyim"},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{UserID: userID, Name: "Ayşe Yılmaz", Email: "ayse@example.com", Phone: "+90 532 000 0001", City: "İstanbul", JoinDate: today.AddDays(-200), TotalOrders: 6, TotalSpent: 412000, Status: models.CustomerActive, LoyaltyPoints: 240},
		{UserID: userID, Name: "Mehmet Demir", Email: "mehmet@example.com", Phone: "+90 532 000 0002", City: "Ankara", JoinDate: today.AddDays(-90), TotalOrders: 2, TotalSpent: 109940, Status: models.CustomerActive, LoyaltyPoints: 60},
		{UserID: userID, Name: "Zeynep Kaya", Email: "zeynep@example.com", Phone: "+90 532 000 0003", City: "İzmir", JoinDate: today.AddDays(-400), TotalOrders: 1, TotalSpent: 29990, Status: models.CustomerInactive},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	orders := []models.Order{
		{
			UserID: userID, OrderNumber: "ATL-2025-0001",
			CustomerName: "Ayşe Yılmaz", CustomerEmail: "ayse@example.com",
			Total: 114940, Status: models.OrderCompleted, PaymentStatus: models.PaymentPaid,
			OrderDate: today.AddDays(-5).Time, ShippingAddress: "Kadıköy, İstanbul",
			Items: []models.OrderItem{
				{ProductID: &products[0].ID, Name: products[0].Name, Quantity: 1, UnitPrice: products[0].Price},
				{ProductID: &products[1].ID, Name: products[1].Name, Quantity: 1, UnitPrice: products[1].Price},
			},
		},
		{
			UserID: userID, OrderNumber: "ATL-2025-0002",
			CustomerName: "Mehmet Demir", CustomerEmail: "mehmet@example.com",
			Total: 64990, Status: models.OrderProcessing, PaymentStatus: models.PaymentPaid,
			OrderDate: today.AddDays(-2).Time, ShippingAddress: "Çankaya, Ankara",
			Items: []models.OrderItem{
				{ProductID: &products[3].ID, Name: products[3].Name, Quantity: 1, UnitPrice: products[3].Price},
			},
		},
		{
			UserID: userID, OrderNumber: "ATL-2025-0003",
			CustomerName: "Zeynep Kaya", CustomerEmail: "zeynep@example.com",
			Total: 29990, Status: models.OrderReturned, PaymentStatus: models.PaymentRefunded,
			OrderDate: today.AddDays(-12).Time, ShippingAddress: "Konak, İzmir",
			Items: []models.OrderItem{
				{ProductID: &products[0].ID, Name: products[0].Name, Quantity: 1, UnitPrice: products[0].Price},
			},
		},
		{
			UserID: userID, OrderNumber: "ATL-2025-0004",
			CustomerName: "Ayşe Yılmaz", CustomerEmail: "ayse@example.com",
			Total: 59980, Status: models.OrderPending, PaymentStatus: models.PaymentPending,
			OrderDate: today.Time, ShippingAddress: "Kadıköy, İstanbul",
			Items: []models.OrderItem{
				{ProductID: &products[0].ID, Name: products[0].Name, Quantity: 2, UnitPrice: products[0].Price},
			},
		},
	}
	if err := db.Create(&orders).Error; err != nil {
		return err
	}

	campaigns := []models.Campaign{
		{UserID: userID, Name: "Yaz İndirimi", Type: models.CampaignDiscount, Status: models.CampaignActive, StartDate: today.AddDays(-10), EndDate: today.AddDays(20), Budget: 500000, Spent: 180000, Reach: 42000, Conversions: 310, ConversionRate: 0.74},
		{UserID: userID, Name: "Eylül Bülteni", Type: models.CampaignEmail, Status: models.CampaignScheduled, StartDate: today.AddDays(7), EndDate: today.AddDays(14), Budget: 80000},
	}
	if err := db.Create(&campaigns).Error; err != nil {
		return err
	}

	entries := []models.CashFlowEntry{
		{UserID: userID, Date: today.AddDays(-3), Kind: models.KindIncome, Amount: 114940, Note: "Sipariş tahsilatı"},
		{UserID: userID, Date: today.AddDays(-1), Kind: models.KindExpense, Amount: 45000, Note: "Kargo faturası"},
		{UserID: userID, Date: today, Kind: models.KindIncome, Amount: 64990, Note: "Sipariş tahsilatı"},
		{UserID: userID, Date: today.AddDays(5), Kind: models.KindExpense, Amount: 120000, Note: "Tedarikçi ödemesi"},
	}
	return db.Create(&entries).Error
}
