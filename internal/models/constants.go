package models

// Category is the top-level classification of an expense.
type Category string

// Categories
const (
	CategoryFood        Category = "Food"
	CategoryPharmacy    Category = "Pharmacy"
	CategoryToiletry    Category = "Toiletry"
	CategoryBills       Category = "Bills"
	CategoryExtra       Category = "Extra"
	CategoryTransport   Category = "Transport"
	CategoryElectronics Category = "Electronics"
	CategoryClothes     Category = "Clothes"
)

// PaymentMethod is how a purchase was paid for.
type PaymentMethod string

// Payment methods
const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCard       PaymentMethod = "Card"
	PaymentNetBanking PaymentMethod = "NetBanking"
	PaymentWallet     PaymentMethod = "Wallet"
	PaymentOther      PaymentMethod = "Other"
)

// DateLayout is the layout of ExpenseRecord.Date.
const DateLayout = "2006-01-02"

// File permissions
const (
	PermissionDataFile   = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// Storage backends
const (
	StorageBackendJSON   = "json"
	StorageBackendSQLite = "sqlite"
)
