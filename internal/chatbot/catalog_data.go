package chatbot

func defaultVisaTypes() []VisaType {
	return []VisaType{
		{Key: EVisa, Title: "E-Visas (Online)", Countries: []Country{
			{Name: "Australia", VisaType: "e-Visa", ProcessingDays: "20 Working Days", VisaFees: "₹9400", ServiceFees: "₹2499", Description: "Electronic visa for Australia tourism and business."},
			{Name: "Singapore", VisaType: "e-Visa", ProcessingDays: "6 Working Days", VisaFees: "₹3000", ServiceFees: "₹599", Description: "Quick online visa for Singapore visits."},
			{Name: "Dubai", VisaType: "e-Visa", ProcessingDays: "6 Working Days", VisaFees: "₹7300", ServiceFees: "₹599", Description: "Electronic visa for Dubai tourism and business."},
			{Name: "Russia", VisaType: "e-Visa", ProcessingDays: "15 Working Days", VisaFees: "₹7300", ServiceFees: "₹599", Description: "Online visa for Russia tourism and business."},
			{Name: "Azerbaijan", VisaType: "e-Visa", ProcessingDays: "7 Working Days", VisaFees: "₹2400", ServiceFees: "₹599", Description: "Electronic visa for Azerbaijan visits."},
			{Name: "Philippines", VisaType: "e-Visa", ProcessingDays: "15 Working Days", VisaFees: "₹5820", ServiceFees: "₹599", Description: "Online visa for Philippines tourism."},
			{Name: "Sri Lanka", VisaType: "Electronic Travel Authorization", ProcessingDays: "7 Working Days", VisaFees: "₹0", ServiceFees: "₹299", Description: "Online authorization for Sri Lanka travel."},
			{Name: "Indonesia", VisaType: "e-Visa", ProcessingDays: "7 Working Days", VisaFees: "₹2900", ServiceFees: "₹599", Description: "Electronic visa for Indonesia tourism."},
			{Name: "Cambodia", VisaType: "e-Visa", ProcessingDays: "4 Working Days", VisaFees: "₹2900", ServiceFees: "₹599", Description: "Fast online visa for Cambodia visits."},
			{Name: "Georgia", VisaType: "e-Visa", ProcessingDays: "6 Working Days", VisaFees: "₹4200", ServiceFees: "₹599", Description: "Electronic visa for Georgia tourism."},
			{Name: "South Korea", VisaType: "e-Visa", ProcessingDays: "17 Working Days", VisaFees: "₹7800", ServiceFees: "₹1999", Description: "Online visa for South Korea tourism and business."},
			{Name: "Turkey", VisaType: "e-Visa (also has Sticker Visa option)", ProcessingDays: "17 Working Days", VisaFees: "₹20000", ServiceFees: "₹2499", Description: "Electronic visa for Turkey visits with sticker visa option."},
			{Name: "Uganda", VisaType: "e-Visa", ProcessingDays: "5 Working Days", VisaFees: "₹2400", ServiceFees: "₹599", Description: "Quick online visa for Uganda visits."},
			{Name: "Bahrain", VisaType: "e-Visa", ProcessingDays: "6 Working Days", VisaFees: "₹2800", ServiceFees: "₹599", Description: "Electronic visa for Bahrain business and tourism."},
			{Name: "Armenia", VisaType: "e-Visa", ProcessingDays: "6 Working Days", VisaFees: "₹1100", ServiceFees: "₹599", Description: "Online visa for Armenia tourism."},
			{Name: "Hong Kong", VisaType: "e-Visa", ProcessingDays: "24 hrs", VisaFees: "₹0", ServiceFees: "₹299", Description: "Ultra-fast online visa for Hong Kong visits."},
			{Name: "Thailand", VisaType: "e-Visa", ProcessingDays: "24 hrs", VisaFees: "₹0", ServiceFees: "₹299", Description: "Same-day online visa for Thailand tourism."},
			{Name: "Malaysia", VisaType: "e-Visa", ProcessingDays: "24 hrs", VisaFees: "₹0", ServiceFees: "₹299", Description: "Instant online visa for Malaysia visits."},
			{Name: "New Zealand", VisaType: "e-Visa", ProcessingDays: "25 Working Days", VisaFees: "₹17000", ServiceFees: "₹2499", Description: "Electronic visa for New Zealand tourism and business."},
		}},
		{Key: StickerVisa, Title: "Sticker/Embassy Visas", Countries: []Country{
			{Name: "United States of America", VisaType: "Sticker Visa", ProcessingDays: "20 Working Days", VisaFees: "₹16095", ServiceFees: "₹2499", Description: "Comprehensive visa services for USA tourism and business."},
			{Name: "United Kingdom", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹15700", ServiceFees: "₹2499", Description: "Professional visa assistance for UK visits."},
			{Name: "Canada", VisaType: "Sticker Visa", ProcessingDays: "20 Working Days", VisaFees: "₹12000", ServiceFees: "₹2499", Description: "Complete visa services for Canada tourism and business."},
			{Name: "Japan", VisaType: "Sticker Visa", ProcessingDays: "8 Working Days", VisaFees: "₹2450", ServiceFees: "₹699", Description: "Fast processing for Japan tourism and business visits."},
			{Name: "South Africa", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹2200", ServiceFees: "₹1499", Description: "Visa services for South Africa tourism and business."},
			{Name: "France", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Professional visa assistance for France visits."},
			{Name: "Switzerland", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Complete visa services for Switzerland tourism and business."},
			{Name: "Germany", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Professional visa assistance for Germany visits."},
			{Name: "Greece", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Visa services for Greece tourism and business."},
			{Name: "Italy", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Complete visa services for Italy tourism and business."},
			{Name: "Netherlands", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Professional visa assistance for Netherlands visits."},
			{Name: "Poland", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Visa services for Poland tourism and business."},
			{Name: "Denmark", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Complete visa services for Denmark tourism and business."},
			{Name: "Slovakia", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Professional visa assistance for Slovakia visits."},
			{Name: "Slovenia", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Visa services for Slovenia tourism and business."},
			{Name: "Austria", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Complete visa services for Austria tourism and business."},
			{Name: "Czech Republic", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Professional visa assistance for Czech Republic visits."},
			{Name: "Hungary", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Visa services for Hungary tourism and business."},
			{Name: "Iceland", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Complete visa services for Iceland tourism and business."},
			{Name: "Bulgaria", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Professional visa assistance for Bulgaria visits."},
			{Name: "Spain", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Complete visa services for Spain tourism and business."},
			{Name: "Norway", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Professional visa assistance for Norway visits."},
			{Name: "Finland", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Visa services for Finland tourism and business."},
			{Name: "Portugal", VisaType: "Sticker Visa", ProcessingDays: "16 Working Days", VisaFees: "₹11000", ServiceFees: "₹1999", Description: "Complete visa services for Portugal tourism and business."},
			{Name: "Turkey", VisaType: "Sticker Visa (also has E-Visa option)", ProcessingDays: "17 Working Days", VisaFees: "₹20000", ServiceFees: "₹2499", Description: "Sticker visa for Turkey with E-Visa option available."},
		}},
		{Key: OnArrival, Title: "Visa on Arrival", Countries: []Country{
			{Name: "Maldives", VisaType: "Visa on Arrival", ProcessingDays: "On Arrival", VisaFees: "₹0", ServiceFees: "₹299", Description: "Free visa on arrival for Maldives holidays."},
			{Name: "Mauritius", VisaType: "Visa on Arrival", ProcessingDays: "On Arrival", VisaFees: "₹0", ServiceFees: "₹299", Description: "Visa on arrival for Mauritius tourism."},
			{Name: "Seychelles", VisaType: "Visitor Permit", ProcessingDays: "On Arrival", VisaFees: "₹0", ServiceFees: "₹299", Description: "Visitor permit on arrival for Seychelles visits."},
			{Name: "Laos", VisaType: "Visa on Arrival", ProcessingDays: "On Arrival", VisaFees: "₹3500", ServiceFees: "₹599", Description: "Visa on arrival for Laos tourism."},
			{Name: "Jordan", VisaType: "Visa on Arrival", ProcessingDays: "On Arrival", VisaFees: "₹4700", ServiceFees: "₹599", Description: "Visa on arrival for Jordan tourism and business."},
		}},
	}
}
