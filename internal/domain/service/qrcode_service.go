package service

// QRCodeService generates a scannable image for the consent page URL that is
// mailed to candidates, so a request shown on a recruiter's screen can be
// answered from a phone.
type QRCodeService interface {
	// GenerateConsentQR renders the consent page link as a PNG QR code.
	GenerateConsentQR(consentURL string) ([]byte, error)
}
