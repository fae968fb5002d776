package s3

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	sharedauth "feedline/shared/auth"
	shareds3 "feedline/shared/s3"
)

const maxAvatarSize = 5 << 20 // 5 MiB

// UploadHandler принимает multipart-изображение, кладет его в бакет под
// uuid-ключом и возвращает публичный URL. Клиент затем передает URL
// в updateProfile как avatar.
func UploadHandler(client *shareds3.S3Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, `{"error": "method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		userID, err := sharedauth.UserIDFromContext(r.Context())
		if err != nil {
			http.Error(w, `{"error": "not authenticated"}`, http.StatusUnauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			log.Printf("❌ [Upload] Failed to parse form: %v", err)
			http.Error(w, `{"error": "failed to parse form"}`, http.StatusBadRequest)
			return
		}
		file, handler, err := r.FormFile("file")
		if err != nil {
			http.Error(w, `{"error": "file is required"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if handler.Size > maxAvatarSize {
			http.Error(w, `{"error": "file too large"}`, http.StatusRequestEntityTooLarge)
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
		if err != nil {
			log.Printf("❌ [Upload] Failed to read file: %v", err)
			http.Error(w, `{"error": "failed to read file"}`, http.StatusInternalServerError)
			return
		}

		contentType := http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "image/") {
			http.Error(w, `{"error": "only images are allowed"}`, http.StatusUnsupportedMediaType)
			return
		}

		key := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.NewString(), filepath.Ext(handler.Filename))
		url, err := client.Upload(key, contentType, data)
		if err != nil {
			log.Printf("❌ [Upload] S3 upload failed: %v", err)
			http.Error(w, `{"error": "upload failed"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"url": url})
	}
}
