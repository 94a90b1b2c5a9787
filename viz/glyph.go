package viz

import "github.com/harperreed/commtrack/models"

// MethodGlyph is the display marker for a communication method.
func MethodGlyph(id models.MethodID) string {
	switch id {
	case models.MethodLinkedInPost:
		return "📢"
	case models.MethodLinkedInMessage:
		return "💬"
	case models.MethodEmail:
		return "✉️"
	case models.MethodPhoneCall:
		return "📞"
	case models.MethodOther:
		return "📝"
	default:
		return "•"
	}
}
