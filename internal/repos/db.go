package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo listings if the table is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Phone listings
CREATE TABLE IF NOT EXISTS phones(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price > 0),
  condition TEXT NOT NULL CHECK (condition IN ('Good','Like New','Excellent')),
  description TEXT NOT NULL,
  images_json TEXT NOT NULL,
  storage TEXT NOT NULL,
  battery TEXT,
  available INTEGER NOT NULL DEFAULT 1,
  is_deal INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_phones_brand      ON phones(brand);
CREATE INDEX IF NOT EXISTS idx_phones_available  ON phones(available);
CREATE INDEX IF NOT EXISTS idx_phones_created_at ON phones(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM phones`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo phone listings")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO phones(id,name,brand,price,condition,description,images_json,storage,battery,available,is_deal,created_at) VALUES
	  ('seed-iphone-12','iPhone 12 128GB','Apple',24999,'Excellent','Lightly used iPhone 12, battery replaced last year.','["phones/iphone-12/main.jpg"]','128GB','89%',1,0,'2024-01-10 09:15:00'),
	  ('seed-galaxy-s21','Galaxy S21','Samsung',18500,'Good','Samsung Galaxy S21 with minor scratches on the frame.','["phones/galaxy-s21/main.jpg","phones/galaxy-s21/back.jpg"]','256GB',NULL,1,1,'2024-01-12 14:30:00'),
	  ('seed-pixel-6','Pixel 6','Google',15000,'Like New','Google Pixel 6 in like-new condition, box included.','["phones/pixel-6/main.jpg"]','128GB','95%',0,0,'2024-01-15 11:00:00')`)

	return tx.Commit()
}
