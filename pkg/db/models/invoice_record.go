package models

// InvoiceRecord is one invoice line item. UserID and StoreID are denormalized
// from the owning Upload at creation time so reporting queries never join.
//
// The natural key (user_id, store_id, invoice_number, invoice_date,
// product_code) is unique per user. The migration adds a coalesce-based unique
// expression index so records with missing key fields still collide, matching
// the lookup semantics of the ingestion pipeline.
type InvoiceRecord struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID   string `gorm:"column:user_id;type:text;not null;index"`
	UploadID int64  `gorm:"column:upload_id;not null;index"`
	StoreID  string `gorm:"column:store_id;type:varchar(50);not null"`

	InvoiceNumber *string `gorm:"column:invoice_number;type:varchar(50)"`
	InvoiceDate   *string `gorm:"column:invoice_date;type:varchar(50)"`
	CustomerName  *string `gorm:"column:customer_name;type:varchar(255)"`
	Address       *string `gorm:"column:address;type:varchar(500)"`
	City          *string `gorm:"column:city;type:varchar(100)"`
	State         *string `gorm:"column:state;type:varchar(10)"`
	ZipCode       *string `gorm:"column:zip_code;type:varchar(20)"`

	ProductCode        *string `gorm:"column:product_code;type:varchar(100)"`
	ProductDescription *string `gorm:"column:product_description;type:text"`
	Brand              *string `gorm:"column:brand;type:varchar(100)"`
	Category           *string `gorm:"column:category;type:varchar(100)"`
	PackSize           *string `gorm:"column:pack_size;type:varchar(50)"`

	Quantity      float64 `gorm:"column:quantity;not null;default:0"`
	UnitPrice     float64 `gorm:"column:unit_price;not null;default:0"`
	ExtendedPrice float64 `gorm:"column:extended_price;not null;default:0"`

	Vendor     *string `gorm:"column:vendor;type:varchar(255)"`
	VendorCode *string `gorm:"column:vendor_code;type:varchar(50)"`
}

func (InvoiceRecord) TableName() string { return "invoice_records" }
