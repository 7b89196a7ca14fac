// file: internals/features/admissions/applications/service/artifact_service.go
package service

import (
	"fmt"
	"log"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/admissions/applications/model"
)

// ArtifactGenerator menghasilkan URL artefak (QR) untuk satu tracking code.
// Dipisah sebagai interface supaya bisa diganti fake di test.
type ArtifactGenerator interface {
	Generate(trackingCode string) (string, error)
}

// qrLinkGenerator — implementasi default: delegasi ke layanan QR eksternal
// via URL, tidak render image sendiri.
type qrLinkGenerator struct {
	baseURL string
}

func NewQRLinkGenerator() ArtifactGenerator {
	return &qrLinkGenerator{
		baseURL: configs.GetEnv("QR_BASE_URL", "https://api.qrserver.com/v1/create-qr-code/"),
	}
}

func (g *qrLinkGenerator) Generate(trackingCode string) (string, error) {
	if trackingCode == "" {
		return "", fmt.Errorf("tracking code kosong")
	}
	return fmt.Sprintf("%s?size=300x300&data=%s", g.baseURL, url.QueryEscape(trackingCode)), nil
}

// DefaultArtifactGenerator bisa di-override dari test
var DefaultArtifactGenerator ArtifactGenerator = NewQRLinkGenerator()

// AttachQRCode generate lalu simpan URL QR ke aplikasi.
// Dipanggil sebagai goroutine setelah commit; gagal di sini tidak
// menggagalkan pendaftaran, cukup dicatat di log.
func AttachQRCode(db *gorm.DB, applicationID uuid.UUID, trackingCode string) {
	qr, err := DefaultArtifactGenerator.Generate(trackingCode)
	if err != nil {
		log.Printf("[APPLICATION] ⚠️ gagal generate QR untuk %s: %v", trackingCode, err)
		return
	}
	if err := db.Model(&model.ApplicationModel{}).
		Where("application_id = ?", applicationID).
		Update("application_qrcode", qr).Error; err != nil {
		log.Printf("[APPLICATION] ⚠️ gagal simpan QR untuk %s: %v", trackingCode, err)
	}
}
