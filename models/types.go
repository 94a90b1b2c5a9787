// ABOUTME: Data models for the communication tracker
// ABOUTME: Defines Company, Communication, CommunicationMethod and reporting metric types
package models

type Company struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Location                 string   `json:"location"`
	LinkedInProfile          string   `json:"linkedinProfile,omitempty"`
	Emails                   []string `json:"emails"`
	PhoneNumbers             []string `json:"phoneNumbers"`
	Comments                 string   `json:"comments,omitempty"`
	CommunicationPeriodicity int      `json:"communicationPeriodicity"` // in days
}

// DefaultPeriodicity is the form default for CommunicationPeriodicity.
const DefaultPeriodicity = 7

// Clone returns a deep copy so callers can't alias the store's slices.
func (c Company) Clone() Company {
	c.Emails = append([]string(nil), c.Emails...)
	c.PhoneNumbers = append([]string(nil), c.PhoneNumbers...)
	return c
}

type Communication struct {
	ID        string   `json:"id"`
	CompanyID string   `json:"companyId"`
	MethodID  MethodID `json:"methodId"`
	Date      string   `json:"date"`
	Notes     string   `json:"notes,omitempty"`
	Completed bool     `json:"completed"`
}

// MethodID identifies one of the fixed communication methods.
type MethodID string

const (
	MethodLinkedInPost    MethodID = "linkedin-post"
	MethodLinkedInMessage MethodID = "linkedin-message"
	MethodEmail           MethodID = "email"
	MethodPhoneCall       MethodID = "phone-call"
	MethodOther           MethodID = "other"
)

type CommunicationMethod struct {
	ID          MethodID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sequence    int      `json:"sequence"`
	IsMandatory bool     `json:"isMandatory"`
}

var defaultCommunicationMethods = []CommunicationMethod{
	{ID: MethodLinkedInPost, Name: "LinkedIn Post", Description: "Post on company LinkedIn page", Sequence: 1},
	{ID: MethodLinkedInMessage, Name: "LinkedIn Message", Description: "Direct message on LinkedIn", Sequence: 2},
	{ID: MethodEmail, Name: "Email", Description: "Send an email", Sequence: 3, IsMandatory: true},
	{ID: MethodPhoneCall, Name: "Phone Call", Description: "Direct phone conversation", Sequence: 4},
	{ID: MethodOther, Name: "Other", Description: "Other communication method", Sequence: 5},
}

// DefaultCommunicationMethods returns the fixed method list in sequence order.
func DefaultCommunicationMethods() []CommunicationMethod {
	return append([]CommunicationMethod(nil), defaultCommunicationMethods...)
}

// LookupMethod finds a method in the fixed list.
func LookupMethod(id MethodID) (CommunicationMethod, bool) {
	for _, m := range defaultCommunicationMethods {
		if m.ID == id {
			return m, true
		}
	}
	return CommunicationMethod{}, false
}

// MethodName returns the display name, or "Unknown Method".
func MethodName(id MethodID) string {
	if m, ok := LookupMethod(id); ok {
		return m.Name
	}
	return "Unknown Method"
}

// Effectiveness score bounds and defaults.
const (
	EffectivenessMin     = 0
	EffectivenessMax     = 100
	EffectivenessDefault = 50
	EffectivenessGain    = 10
	EffectivenessLoss    = 5
)

type CommunicationTrends struct {
	Total     int `json:"total"`
	Overdue   int `json:"overdue"`
	Completed int `json:"completed"`
}

type ReportingMetrics struct {
	CommunicationMethodFrequency map[MethodID]int    `json:"communicationMethodFrequency"`
	EngagementEffectiveness      map[MethodID]int    `json:"engagementEffectiveness"`
	CommunicationTrends          CommunicationTrends `json:"communicationTrends"`
}

// DefaultReportingMetrics returns zero frequency and a score of 50 for every method.
func DefaultReportingMetrics() ReportingMetrics {
	m := ReportingMetrics{
		CommunicationMethodFrequency: make(map[MethodID]int, len(defaultCommunicationMethods)),
		EngagementEffectiveness:      make(map[MethodID]int, len(defaultCommunicationMethods)),
	}
	for _, method := range defaultCommunicationMethods {
		m.CommunicationMethodFrequency[method.ID] = 0
		m.EngagementEffectiveness[method.ID] = EffectivenessDefault
	}
	return m
}

// Clone returns a copy with fresh maps.
func (m ReportingMetrics) Clone() ReportingMetrics {
	out := ReportingMetrics{
		CommunicationMethodFrequency: make(map[MethodID]int, len(m.CommunicationMethodFrequency)),
		EngagementEffectiveness:      make(map[MethodID]int, len(m.EngagementEffectiveness)),
		CommunicationTrends:          m.CommunicationTrends,
	}
	for k, v := range m.CommunicationMethodFrequency {
		out.CommunicationMethodFrequency[k] = v
	}
	for k, v := range m.EngagementEffectiveness {
		out.EngagementEffectiveness[k] = v
	}
	return out
}
