// Seeds a running server with a sample menu through the admin API, so the
// seeded data goes through the same validation as real admin requests.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

type category struct {
	Name  string  `json:"name"`
	Image string  `json:"image,omitempty"`
	items []item
}

type item struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageID    string  `json:"image_id,omitempty"`
	CategoryID int64   `json:"category_id"`
}

var sampleMenu = []category{
	{Name: "Burgers", Image: "burgers.jpg", items: []item{
		{Name: "Classic Burger", Price: 10.99},
		{Name: "Cheeseburger", Price: 11.99},
		{Name: "Double Bacon Burger", Price: 14.49},
	}},
	{Name: "Sides", Image: "sides.jpg", items: []item{
		{Name: "French Fries", Price: 3.99},
		{Name: "Onion Rings", Price: 4.49},
	}},
	{Name: "Drinks", Image: "drinks.jpg", items: []item{
		{Name: "Cola", Price: 2.49},
		{Name: "Milkshake", Price: 5.99},
	}},
}

func main() {
	baseURL := defaultBaseURL
	if v := os.Getenv("KIOSK_URL"); v != "" {
		baseURL = v
	}

	client := &http.Client{Timeout: 10 * time.Second}

	var created, skipped int
	for _, cat := range sampleMenu {
		categoryID, err := postJSON(client, baseURL+"/api/v1/admin/categories", cat)
		if err != nil {
			log.Printf("skipping category %q: %v", cat.Name, err)
			skipped += 1 + len(cat.items)
			continue
		}
		created++

		for _, it := range cat.items {
			it.CategoryID = categoryID
			if _, err := postJSON(client, baseURL+"/api/v1/admin/items", it); err != nil {
				log.Printf("skipping item %q: %v", it.Name, err)
				skipped++
				continue
			}
			created++
		}
	}

	fmt.Printf("seed finished: %d created, %d skipped\n", created, skipped)
}

func postJSON(client *http.Client, url string, payload any) (int64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Detail string `json:"detail"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return 0, fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Detail)
	}

	var createdResp struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&createdResp); err != nil {
		return 0, err
	}
	return createdResp.ID, nil
}
