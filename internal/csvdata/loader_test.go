package csvdata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return dir
}

func fixtureFiles() map[string]string {
	return map[string]string{
		UsersFile: "id,country,traffic_source,created_at\n" +
			"1,Japan,Search,2023-01-01\n" +
			"2,Brasil,Email,2023-02-01\n",
		ProductsFile: "id,name,category,brand,department,cost,retail_price\n" +
			"10,Slim Jeans,Jeans,Acme,Men,20.5,49.9\n" +
			"11,Wool Socks,Socks,Acme,Men,,9.9\n",
		OrdersFile: "order_id,user_id,status,gender,created_at\n" +
			"100,1,Complete,F,2024-01-10\n" +
			"101,2,Cancelled,M,2024-02-05\n" +
			"102,99,Complete,M,2024-03-01\n", // user 99 does not exist
		OrderItemsFile: "id,order_id,product_id,sale_price,status,created_at\n" +
			"1000,100,10,45.0,Complete,2024-01-10\n" +
			"1001,100,11,8.5,Returned,2024-01-10\n" +
			"1002,101,77,12.0,Cancelled,2024-02-05\n", // product 77 does not exist
	}
}

func TestLoadJoinsAndDrops(t *testing.T) {
	dir := writeFixtures(t, fixtureFiles())

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Order 102 references a missing user and must be dropped.
	if len(ds.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(ds.Orders))
	}
	if ds.Orders[0].Country != "Japan" || ds.Orders[0].TrafficSource != "Search" {
		t.Errorf("user join failed: %+v", ds.Orders[0])
	}

	if len(ds.OrderLines) != 3 {
		t.Fatalf("expected 3 order lines, got %d", len(ds.OrderLines))
	}
}

func TestLoadMissingProductYieldsZeroFields(t *testing.T) {
	dir := writeFixtures(t, fixtureFiles())

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var orphan *models.OrderLine
	for i := range ds.OrderLines {
		if ds.OrderLines[i].ProductID == 77 {
			orphan = &ds.OrderLines[i]
		}
	}
	if orphan == nil {
		t.Fatal("line for missing product not loaded")
	}
	if orphan.Category != "" || orphan.Cost != 0 || orphan.RetailPrice != 0 {
		t.Errorf("expected zero-valued product fields, got %+v", orphan)
	}
	if orphan.SalePrice != 12.0 {
		t.Errorf("sale price should survive the missing join: %+v", orphan)
	}
}

func TestLoadBlankNumericIsZero(t *testing.T) {
	dir := writeFixtures(t, fixtureFiles())

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, l := range ds.OrderLines {
		if l.ProductID == 11 && l.Cost != 0 {
			t.Errorf("blank cost should parse as 0, got %v", l.Cost)
		}
	}
}

func TestLoadGenderComesFromOrder(t *testing.T) {
	dir := writeFixtures(t, fixtureFiles())

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, l := range ds.OrderLines {
		switch l.OrderID {
		case 100:
			if l.Gender != "F" {
				t.Errorf("order 100 lines should be F, got %q", l.Gender)
			}
		case 101:
			if l.Gender != "M" {
				t.Errorf("order 101 lines should be M, got %q", l.Gender)
			}
		}
	}
}

func TestLoadMaxDate(t *testing.T) {
	dir := writeFixtures(t, fixtureFiles())

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	if !ds.MaxDate.Equal(expected) {
		t.Errorf("expected max date %v, got %v", expected, ds.MaxDate)
	}
}

func TestLoadMissingFileIsDataUnavailable(t *testing.T) {
	files := fixtureFiles()
	delete(files, OrderItemsFile)
	dir := writeFixtures(t, files)

	_, err := Load(dir)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestLoadHeaderOrderIndependent(t *testing.T) {
	files := fixtureFiles()
	files[UsersFile] = "traffic_source,created_at,id,country\n" +
		"Search,2023-01-01,1,Japan\n" +
		"Email,2023-02-01,2,Brasil\n"
	dir := writeFixtures(t, files)

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Orders) != 2 || ds.Orders[0].Country != "Japan" {
		t.Errorf("shuffled headers broke the user join: %+v", ds.Orders)
	}
}
