package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// Error пишет ошибку в формате {"erro": "..."}
func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"erro": message})
}

// Status отвечает кодом без тела (404, 204)
func Status(w http.ResponseWriter, r *http.Request, code int) {
	w.WriteHeader(code)
}
