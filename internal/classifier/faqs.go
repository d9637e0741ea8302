package classifier

import (
	"github.com/lib/pq"

	"hostelhelper/backend/internal/models"
)

// DefaultFAQs is the built-in catalogue, seeded into storage at startup.
func DefaultFAQs() []models.FAQ {
	return []models.FAQ{
		{
			ID:       "faq-1",
			Question: "What are the hostel visiting hours?",
			Answer:   "Visiting hours are from 4:00 PM to 7:00 PM on weekdays and 10:00 AM to 7:00 PM on weekends. All visitors must register at the reception.",
			Keywords: pq.StringArray{"visiting", "hours", "guests", "visit", "time"},
		},
		{
			ID:       "faq-2",
			Question: "How do I request maintenance in my hostel room?",
			Answer:   "You can submit a maintenance request through the chatbot. Just type 'maintenance issue' and describe the problem. You'll receive a ticket number to track your request.",
			Keywords: pq.StringArray{"maintenance", "repair", "fix", "broken", "request"},
		},
		{
			ID:       "faq-3",
			Question: "What are the mess timings?",
			Answer:   "Breakfast: 7:30 AM - 9:30 AM, Lunch: 12:00 PM - 2:00 PM, Dinner: 7:00 PM - 9:00 PM. On weekends, breakfast extends until 10:30 AM.",
			Keywords: pq.StringArray{"mess", "timing", "time", "food", "meal", "breakfast", "lunch", "dinner"},
		},
		{
			ID:       "faq-4",
			Question: "How can I change my hostel room?",
			Answer:   "Room change requests can be made once per semester. Fill out the room change form at the hostel office or submit a request through this chatbot by typing 'room change request'.",
			Keywords: pq.StringArray{"change", "room", "shifting", "move", "transfer"},
		},
		{
			ID:       "faq-5",
			Question: "What should I do if I lost my hostel key?",
			Answer:   "Report the lost key immediately to the hostel warden. A replacement key will be provided after paying the replacement fee of $15.",
			Keywords: pq.StringArray{"lost", "key", "replacement", "missing"},
		},
		{
			ID:       "faq-6",
			Question: "How do I apply for a special meal?",
			Answer:   "If you have dietary restrictions, you can request a special meal plan. Submit your medical certificate or dietary requirements to the mess manager to get approval.",
			Keywords: pq.StringArray{"special", "meal", "diet", "allergy", "vegetarian", "vegan"},
		},
		{
			ID:       "faq-7",
			Question: "What are the quiet hours in the hostel?",
			Answer:   "Quiet hours are from 10:00 PM to 6:00 AM every day. During exam periods, extended quiet hours are enforced from 8:00 PM to 8:00 AM.",
			Keywords: pq.StringArray{"quiet", "hours", "silence", "noise", "disturb"},
		},
		{
			ID:       "faq-8",
			Question: "How do I access Wi-Fi in the hostel?",
			Answer:   "The hostel provides free Wi-Fi for all residents. Connect to 'Hostel-WiFi' and use your student ID and date of birth (DDMMYYYY format) as the password for first-time login.",
			Keywords: pq.StringArray{"wifi", "internet", "connection", "network"},
		},
	}
}
