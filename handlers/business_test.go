package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alama-backend/models"

	"github.com/google/uuid"
)

func TestCreateBusiness(t *testing.T) {
	db := freshDB()
	router := setupBusinessRouter(db)

	owner := seedOwner(db, "bizowner@test.com", "+255710000001", "password123")

	body := map[string]interface{}{
		"business_owner_id":   owner.ID.String(),
		"business_name":       "Mama Ntilie",
		"business_category":   "restaurant",
		"number_of_employees": 8,
		"logo":                "https://cdn.test/logo.png",
		"license":             "https://cdn.test/license.pdf",
		"location":            "Arusha",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/businesses", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	business := resp["business"].(map[string]interface{})
	if business["business_name"] != "Mama Ntilie" {
		t.Errorf("expected business_name Mama Ntilie, got %v", business["business_name"])
	}
	if business["number_of_employees"] != float64(8) {
		t.Errorf("expected 8 employees, got %v", business["number_of_employees"])
	}
}

func TestCreateBusinessMissingFields(t *testing.T) {
	db := freshDB()
	router := setupBusinessRouter(db)

	body := map[string]interface{}{
		"business_name": "Incomplete",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/businesses", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetBusinessByID(t *testing.T) {
	db := freshDB()
	router := setupBusinessRouter(db)

	owner := seedOwner(db, "bizget@test.com", "+255710000002", "password123")
	business := seedBusiness(db, owner.ID, "Chakula Point")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/businesses/"+business.ID.String(), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["business_name"] != "Chakula Point" {
		t.Errorf("expected business_name Chakula Point, got %v", resp["business_name"])
	}
}

func TestGetBusinessNotFound(t *testing.T) {
	db := freshDB()
	router := setupBusinessRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/businesses/"+uuid.New().String(), nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateBusinessPartial(t *testing.T) {
	db := freshDB()
	router := setupBusinessRouter(db)

	owner := seedOwner(db, "bizupdate@test.com", "+255710000003", "password123")
	business := seedBusiness(db, owner.ID, "Old Name")

	body := map[string]interface{}{
		"business_name": "New Name",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/businesses/"+business.ID.String(), body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Business
	db.First(&updated, "id = ?", business.ID)
	if updated.BusinessName != "New Name" {
		t.Errorf("expected business name New Name, got %s", updated.BusinessName)
	}
	if updated.Location != "Dar es Salaam" {
		t.Errorf("expected untouched location, got %s", updated.Location)
	}
}

func TestDeleteBusiness(t *testing.T) {
	db := freshDB()
	router := setupBusinessRouter(db)

	owner := seedOwner(db, "bizdelete@test.com", "+255710000004", "password123")
	business := seedBusiness(db, owner.ID, "Doomed")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/businesses/"+business.ID.String(), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Business{}).Where("id = ?", business.ID).Count(&count)
	if count != 0 {
		t.Error("business still present after delete")
	}
}

func TestDeleteBusinessNotFound(t *testing.T) {
	db := freshDB()
	router := setupBusinessRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/businesses/"+uuid.New().String(), nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}
