package handlers

import (
	"net/http"
	"testing"

	"traffic-management-api/models"
)

func TestRegisterVehicle(t *testing.T) {
	router, db, auth := setupTestAPI(t)
	token := bearerToken(t, auth)

	w := jsonRequest(t, router, http.MethodPost, "/vehicles/register", token, map[string]string{
		"vehicle_number": "KA-01-AB-1234",
		"owner_name":     "Asha Rao",
		"vehicle_type":   "car",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	id, ok := body["vehicle_id"].(float64)
	if !ok || id <= 0 {
		t.Errorf("vehicle_id = %v, want positive integer", body["vehicle_id"])
	}

	var count int64
	db.Model(&models.Vehicle{}).Count(&count)
	if count != 1 {
		t.Errorf("vehicle rows = %d, want 1", count)
	}
}

func TestRegisterVehicleMissingFields(t *testing.T) {
	router, db, auth := setupTestAPI(t)
	token := bearerToken(t, auth)

	cases := []map[string]string{
		{"owner_name": "Asha Rao", "vehicle_type": "car"},
		{"vehicle_number": "KA-01-AB-1234", "vehicle_type": "car"},
		{"vehicle_number": "KA-01-AB-1234", "owner_name": "Asha Rao"},
	}
	for _, body := range cases {
		w := jsonRequest(t, router, http.MethodPost, "/vehicles/register", token, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status = %d, want 400", body, w.Code)
		}
	}

	// None of the rejected requests may have touched the store
	var count int64
	db.Model(&models.Vehicle{}).Count(&count)
	if count != 0 {
		t.Errorf("vehicle rows = %d, want 0", count)
	}
}

func TestRegisterVehicleWithoutToken(t *testing.T) {
	router, db, _ := setupTestAPI(t)

	w := jsonRequest(t, router, http.MethodPost, "/vehicles/register", "", map[string]string{
		"vehicle_number": "KA-01-AB-1234",
		"owner_name":     "Asha Rao",
		"vehicle_type":   "car",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var count int64
	db.Model(&models.Vehicle{}).Count(&count)
	if count != 0 {
		t.Errorf("vehicle rows = %d, want 0 (no mutation without auth)", count)
	}
}

func TestRegisterVehicleInvalidToken(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	w := jsonRequest(t, router, http.MethodPost, "/vehicles/register", "Bearer bogus.token", map[string]string{
		"vehicle_number": "KA-01-AB-1234",
		"owner_name":     "Asha Rao",
		"vehicle_type":   "car",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 (not 401) for a well-formed bad token", w.Code)
	}
}

func TestGetVehicle(t *testing.T) {
	router, db, auth := setupTestAPI(t)
	token := bearerToken(t, auth)

	vehicle := models.Vehicle{VehicleNumber: "MH-12-XY-9999", OwnerName: "Ravi Kumar", VehicleType: "truck"}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}

	w := jsonRequest(t, router, http.MethodGet, "/vehicles/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["vehicle_number"] != "MH-12-XY-9999" {
		t.Errorf("vehicle_number = %v", body["vehicle_number"])
	}
	if body["owner_name"] != "Ravi Kumar" {
		t.Errorf("owner_name = %v", body["owner_name"])
	}
}

func TestGetVehicleNonNumericID(t *testing.T) {
	router, _, auth := setupTestAPI(t)

	// Must 404 without the id ever reaching the integer column
	w := jsonRequest(t, router, http.MethodGet, "/vehicles/abc", bearerToken(t, auth), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body: %s", w.Code, w.Body.String())
	}
}

func TestGetVehicleNotFound(t *testing.T) {
	router, _, auth := setupTestAPI(t)

	w := jsonRequest(t, router, http.MethodGet, "/vehicles/999", bearerToken(t, auth), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body: %s", w.Code, w.Body.String())
	}
}
