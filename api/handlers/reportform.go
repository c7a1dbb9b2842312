package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Sami21234/lostfound-backend/uploads"
)

// reportInput carries the client-supplied fields of a lost or found report.
// EventDate maps to dateLost or dateFound depending on the endpoint.
type reportInput struct {
	ItemName     string `json:"itemName"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	DateLost     string `json:"dateLost"`
	DateFound    string `json:"dateFound"`

	imageURL string
}

// parseReportInput accepts either a JSON body or a multipart form with an
// optional "image" part. When an image accompanies the report it is pushed to
// the photo store and the resulting URL recorded on the input.
func parseReportInput(ctx context.Context, r *http.Request, photos uploads.PhotoStore) (*reportInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	in := &reportInput{}
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(uploads.MaxUploadBytes); err != nil {
			return nil, fmt.Errorf("failed to parse multipart form: %w", err)
		}
		in.ItemName = r.FormValue("itemName")
		in.Description = r.FormValue("description")
		in.Location = r.FormValue("location")
		in.ContactName = r.FormValue("contactName")
		in.ContactPhone = r.FormValue("contactPhone")
		in.ContactEmail = r.FormValue("contactEmail")
		in.DateLost = r.FormValue("dateLost")
		in.DateFound = r.FormValue("dateFound")

		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			if photos == nil {
				return nil, fmt.Errorf("image uploads are not configured")
			}
			url, uploadErr := photos.Upload(ctx, file, header.Header.Get("Content-Type"))
			if uploadErr != nil {
				return nil, uploadErr
			}
			in.imageURL = url
		} else if err != http.ErrMissingFile {
			zap.S().Debugw("no usable image part on report", "error", err)
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(in); err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
	}

	return in, nil
}

// validate enforces the required report fields before anything is persisted
func (in *reportInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.ItemName) == "" {
		missing = append(missing, "itemName")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(in.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
