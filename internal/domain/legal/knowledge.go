package legal

import (
	"fmt"
	"strings"
)

// KnowledgeBase is an immutable, ordered table of domains. Order matters:
// it is the tie-break order used by Classify.
type KnowledgeBase struct {
	domains []Domain
}

// NewKnowledgeBase validates the given domains and returns a knowledge base
// that keeps them in the given order.
func NewKnowledgeBase(domains ...Domain) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{domains: domains}
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return kb, nil
}

// Validate checks the structural invariants of the table. A failure is a
// programming defect and should stop the process at startup.
func (kb *KnowledgeBase) Validate() error {
	if len(kb.domains) == 0 {
		return fmt.Errorf("knowledge base: no domains")
	}
	seenDomains := make(map[string]bool, len(kb.domains))
	for _, d := range kb.domains {
		if d.Key == "" {
			return fmt.Errorf("knowledge base: domain with empty key")
		}
		if seenDomains[d.Key] {
			return fmt.Errorf("knowledge base: duplicate domain %q", d.Key)
		}
		seenDomains[d.Key] = true

		if len(d.Keywords) == 0 {
			return fmt.Errorf("knowledge base: domain %q has no keywords", d.Key)
		}
		for _, kw := range d.Keywords {
			if kw == "" || kw != strings.ToLower(kw) {
				return fmt.Errorf("knowledge base: domain %q keyword %q must be non-empty lowercase", d.Key, kw)
			}
		}
		if len(d.Categories) == 0 {
			return fmt.Errorf("knowledge base: domain %q has no categories", d.Key)
		}
		seenCats := make(map[string]bool, len(d.Categories))
		for _, c := range d.Categories {
			if c.Key == "" || seenCats[c.Key] {
				return fmt.Errorf("knowledge base: domain %q has empty or duplicate category key %q", d.Key, c.Key)
			}
			seenCats[c.Key] = true
			if !c.Urgency.Valid() {
				return fmt.Errorf("knowledge base: category %s/%s has invalid urgency %q", d.Key, c.Key, c.Urgency)
			}
			if len(c.Laws) == 0 || len(c.Steps) == 0 || len(c.Documents) == 0 {
				return fmt.Errorf("knowledge base: category %s/%s must list laws, steps and documents", d.Key, c.Key)
			}
		}
	}
	return nil
}

// Domains returns the domains in table order. The returned slice is a copy;
// the categories inside share backing arrays with the table and must not be
// mutated.
func (kb *KnowledgeBase) Domains() []Domain {
	out := make([]Domain, len(kb.domains))
	copy(out, kb.domains)
	return out
}

// Domain looks a domain up by key.
func (kb *KnowledgeBase) Domain(key string) (Domain, bool) {
	for _, d := range kb.domains {
		if d.Key == key {
			return d, true
		}
	}
	return Domain{}, false
}

// Default returns the built-in Indian legal knowledge base. It panics if the
// table is inconsistent, which can only happen through an edit to this file.
func Default() *KnowledgeBase {
	kb, err := NewKnowledgeBase(defaultDomains()...)
	if err != nil {
		panic(err)
	}
	return kb
}

func defaultDomains() []Domain {
	return []Domain{
		{
			Key:      "employment",
			Keywords: []string{"job", "salary", "termination", "workplace", "employee", "employer", "resignation", "firing", "unpaid", "overtime"},
			Categories: []IssueCategory{
				{
					Key:         "wrongful_termination",
					Name:        "Wrongful Termination",
					Description: "Being fired or removed from your job without proper notice or valid reason",
					Laws:        []string{"Industrial Disputes Act, 1947", "Shops and Establishments Act (State-specific)"},
					Steps: []string{
						"Collect your appointment letter, termination notice, and salary slips",
						"Check if you received proper notice period (usually 30-90 days)",
						"Document all communication with your employer",
						"File a complaint with the Labour Commissioner within 45 days",
						"Consider approaching Labour Court if settlement fails",
					},
					Documents: []string{"Employment contract", "Termination letter", "Salary slips (last 6 months)", "Appointment letter", "Any written warnings"},
					Urgency:   UrgencyHigh,
					Timeline:  "File complaint within 45 days of termination",
				},
				{
					Key:         "salary_dispute",
					Name:        "Salary Not Paid",
					Description: "Your employer has not paid your salary on time or has deducted money unfairly",
					Laws:        []string{"Payment of Wages Act, 1936", "Minimum Wages Act, 1948"},
					Steps: []string{
						"Keep records of your work hours and agreed salary",
						"Send a formal email/letter to HR demanding payment",
						"File complaint with Labour Commissioner online or in person",
						"Labour office will call employer for conciliation meeting",
						"If unresolved, case moves to court for legal action",
					},
					Documents: []string{"Appointment letter showing salary", "Bank statements", "Email/WhatsApp communication", "Attendance records", "Pay slips if available"},
					Urgency:   UrgencyHigh,
					Timeline:  "Complaint can be filed immediately, preferably within 1 month",
				},
			},
		},
		{
			Key:      "property",
			Keywords: []string{"house", "flat", "land", "rent", "landlord", "tenant", "eviction", "lease", "property", "real estate", "possession"},
			Categories: []IssueCategory{
				{
					Key:         "tenant_eviction",
					Name:        "Forced Eviction by Landlord",
					Description: "Your landlord is trying to remove you from the rented property without following legal process",
					Laws:        []string{"Rent Control Act (State-specific)", "Transfer of Property Act, 1882"},
					Steps: []string{
						"Check your rent agreement for notice period and terms",
						"Landlord must give written notice (usually 1-3 months)",
						"Do not vacate without proper legal notice",
						"File complaint with Rent Control Authority in your city",
						"Landlord cannot forcibly evict you without court order",
					},
					Documents: []string{"Rent agreement", "Rent payment receipts", "Notice from landlord", "Any written communication", "Police complaint (if threatened)"},
					Urgency:   UrgencyHigh,
					Timeline:  "File complaint immediately upon receiving illegal eviction notice",
				},
				{
					Key:         "property_dispute",
					Name:        "Property Ownership Dispute",
					Description: "Someone is claiming ownership or right over your property",
					Laws:        []string{"Transfer of Property Act, 1882", "Indian Evidence Act, 1872", "Limitation Act, 1963"},
					Steps: []string{
						"Gather all property documents (sale deed, title deed, tax receipts)",
						"Get encumbrance certificate from Sub-Registrar office",
						"Consult a property lawyer for document verification",
						"Send legal notice to the other party",
						"File civil suit for declaration of ownership if needed",
					},
					Documents: []string{"Sale deed", "Title deed", "Property tax receipts", "Encumbrance certificate", "Survey documents", "Will or inheritance papers"},
					Urgency:   UrgencyMedium,
					Timeline:  "Civil suits have 12-year limitation period for property claims",
				},
			},
		},
		{
			Key:      "consumer",
			Keywords: []string{"product", "service", "defective", "refund", "consumer", "shop", "online", "purchase", "warranty", "fraud"},
			Categories: []IssueCategory{
				{
					Key:         "defective_product",
					Name:        "Defective Product or Poor Service",
					Description: "You bought something that is faulty or received bad service",
					Laws:        []string{"Consumer Protection Act, 2019"},
					Steps: []string{
						"Contact the seller/service provider with your complaint",
						"Send written complaint via email or registered post",
						"Wait 30 days for response from company",
						"File complaint on National Consumer Helpline (1915) or online portal",
						"Approach Consumer Court if amount is less than ₹1 crore",
					},
					Documents: []string{"Purchase bill/invoice", "Product photos/videos", "Warranty card", "Email communication", "Bank/card payment proof"},
					Urgency:   UrgencyMedium,
					Timeline:  "File complaint within 2 years of purchase/service",
				},
				{
					Key:         "online_fraud",
					Name:        "Online Shopping Fraud",
					Description: "You paid for something online but did not receive it or received fake product",
					Laws:        []string{"Consumer Protection Act, 2019", "Information Technology Act, 2000", "Indian Penal Code Section 420"},
					Steps: []string{
						"Take screenshots of product listing, payment, and communication",
						"Report transaction to your bank/card company immediately",
						"File cyber complaint on cybercrime.gov.in portal",
						"Lodge FIR at local police station if amount is significant",
						"File consumer complaint if seller is identifiable",
					},
					Documents: []string{"Order confirmation email", "Payment screenshot", "Chat/email with seller", "Bank statement", "Product listing screenshot"},
					Urgency:   UrgencyHigh,
					Timeline:  "Report to bank within 24-48 hours; file cyber complaint within 7 days",
				},
			},
		},
		{
			Key:      "family",
			Keywords: []string{"divorce", "marriage", "custody", "maintenance", "child", "domestic violence", "dowry", "alimony", "abuse"},
			Categories: []IssueCategory{
				{
					Key:         "domestic_violence",
					Name:        "Domestic Violence",
					Description: "Physical, mental, or emotional abuse by family member or spouse",
					Laws:        []string{"Protection of Women from Domestic Violence Act, 2005", "Indian Penal Code Section 498A"},
					Steps: []string{
						"Call Women Helpline 181 for immediate assistance",
						"Visit nearest police station to file FIR",
						"Get medical examination done if physically hurt",
						"Approach Protection Officer or file petition in Magistrate Court",
						"You can claim right to residence and monetary relief",
					},
					Documents: []string{"Medical reports if injured", "Photos of injuries", "Witness statements", "Any threatening messages", "Marriage certificate"},
					Urgency:   UrgencyHigh,
					Timeline:  "File complaint immediately; FIR has no time limit for domestic violence",
				},
				{
					Key:         "child_custody",
					Name:        "Child Custody Dispute",
					Description: "Disagreement about who should take care of children after separation",
					Laws:        []string{"Hindu Minority and Guardianship Act, 1956", "Guardians and Wards Act, 1890"},
					Steps: []string{
						"Try to reach mutual agreement through family counseling",
						"Document your relationship and care for the child",
						"File custody petition in Family Court",
						"Court will prioritize child welfare and best interest",
						"Mother usually gets custody of children below 7 years",
					},
					Documents: []string{"Birth certificate of child", "School records", "Medical records", "Income proof", "Character witnesses", "Marriage certificate"},
					Urgency:   UrgencyMedium,
					Timeline:  "Can be filed anytime; court process takes 6-12 months",
				},
				{
					Key:         "maintenance",
					Name:        "Maintenance/Alimony Not Paid",
					Description: "Spouse or parent not providing financial support as ordered by court",
					Laws:        []string{"Hindu Marriage Act Section 125 CrPC", "Muslim Women Act, 1986"},
					Steps: []string{
						"Collect proof of non-payment (bank statements)",
						"Send legal notice demanding payment",
						"File execution petition in the same court that passed order",
						"Court can attach salary or property for recovery",
						"Can also file criminal complaint for willful non-payment",
					},
					Documents: []string{"Court order for maintenance", "Bank statements", "Income proof of spouse", "Expense bills", "Any communication"},
					Urgency:   UrgencyMedium,
					Timeline:  "File execution petition anytime after non-payment",
				},
			},
		},
		{
			Key:      "traffic",
			Keywords: []string{"challan", "traffic", "fine", "driving", "license", "accident", "vehicle", "rto", "pollution"},
			Categories: []IssueCategory{
				{
					Key:         "traffic_challan",
					Name:        "Traffic Challan/Fine",
					Description: "You received a traffic violation ticket or fine",
					Laws:        []string{"Motor Vehicles Act, 1988"},
					Steps: []string{
						"Check challan details on Parivahan website or local traffic police site",
						"Verify if challan is correct (check date, time, location)",
						"Pay fine online or at traffic office if accepting violation",
						"If disputing, visit traffic court on date mentioned",
						"Submit evidence (documents, photos) to prove your case",
					},
					Documents: []string{"Driving license", "Vehicle registration", "Insurance papers", "Photos/dashcam footage (if disputing)", "Challan notice"},
					Urgency:   UrgencyLow,
					Timeline:  "Pay within 60 days to avoid increased penalty; court hearing within 90 days",
				},
				{
					Key:         "accident_claim",
					Name:        "Road Accident Compensation",
					Description: "You were injured in a road accident and need compensation",
					Laws:        []string{"Motor Vehicles Act, 1988", "Fatal Accidents Act, 1855"},
					Steps: []string{
						"File FIR immediately after accident at nearest police station",
						"Get medical treatment and keep all bills and reports",
						"Note down vehicle number and collect witness details",
						"Apply to Motor Accident Claims Tribunal within 6 months",
						"Insurance company will be directed to pay compensation",
					},
					Documents: []string{"FIR copy", "Medical reports and bills", "Disability certificate if applicable", "Income proof", "Photos of accident", "Witness statements"},
					Urgency:   UrgencyHigh,
					Timeline:  "File claim within 6 months of accident",
				},
			},
		},
		{
			Key:      "criminal",
			Keywords: []string{"fir", "police", "arrest", "bail", "theft", "assault", "fraud", "cheating", "complaint"},
			Categories: []IssueCategory{
				{
					Key:         "false_fir",
					Name:        "False FIR Against You",
					Description: "Someone has filed a fake police complaint against you",
					Laws:        []string{"Code of Criminal Procedure, 1973", "Indian Penal Code"},
					Steps: []string{
						"Do not panic; collect evidence proving your innocence",
						"Hire a criminal lawyer immediately",
						"Apply for anticipatory bail in Sessions Court",
						"Cooperate with police investigation",
						"File counter-complaint for false case if you have proof",
					},
					Documents: []string{"Any alibi proof (CCTV, travel tickets)", "Witness statements", "Phone records", "Communication with complainant", "Character certificates"},
					Urgency:   UrgencyHigh,
					Timeline:  "Apply for anticipatory bail before arrest; quash petition within reasonable time",
				},
				{
					Key:         "police_harassment",
					Name:        "Police Harassment",
					Description: "Police are threatening you or demanding bribe",
					Laws:        []string{"Code of Criminal Procedure Section 154", "Prevention of Corruption Act"},
					Steps: []string{
						"Record conversation if possible (legal as you are party)",
						"File complaint with Senior Police Officer or Commissioner",
						"Complain to State Human Rights Commission",
						"Can approach Lokayukta or Anti-Corruption Bureau",
						"As last resort, file writ petition in High Court",
					},
					Documents: []string{"Audio/video recording", "Witness statements", "Written threats if any", "Previous complaint copies"},
					Urgency:   UrgencyHigh,
					Timeline:  "File complaint immediately; corruption complaints have no limitation",
				},
			},
		},
	}
}
