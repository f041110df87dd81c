// internal/assistant/composer/templates.go
//
// The response bodies live here as fixed bilingual prose; composer.go only
// decides which one to render and with what data.
package composer

import (
	"fmt"
	"strings"

	"police-assistant/internal/models"
)

// ordinalSuffix returns the English ordinal suffix for n (1st, 2nd, 3rd,
// 4th, 11th, 21st). Telugu uses the invariant "వ".
func ordinalSuffix(n int) string {
	j, k := n%10, n%100
	switch {
	case j == 1 && k != 11:
		return "st"
	case j == 2 && k != 12:
		return "nd"
	case j == 3 && k != 13:
		return "rd"
	default:
		return "th"
	}
}

func greetingText(lang models.Language, queryNumber int) string {
	var personalized string
	if queryNumber > 1 {
		personalized = models.Localized{
			EN: fmt.Sprintf("Welcome back! I see this is your %d%s query today. ", queryNumber, ordinalSuffix(queryNumber)),
			TE: fmt.Sprintf("తిరిగి స్వాగతం! ఇది ఈ రోజు మీ %dవ ప్రశ్న అని నేను చూస్తున్నాను. ", queryNumber),
		}.Get(lang)
	}

	return personalized + models.Localized{
		EN: `Hello! Welcome to AP Police Buddy. I'm here to help you with all your police-related queries in Andhra Pradesh.

I can assist you with:
• 🔍 Checking FIR status
• 📊 Getting crime statistics
• 📝 Filing complaints
• 🚨 Emergency assistance
• 🚦 Traffic rules and regulations
• 📄 Lost document procedures
• 📞 Police station contacts

What would you like to know today?`,
		TE: `నమస్కారం! AP పోలీస్ బడ్డీకి స్వాగతం. ఆంధ్రప్రదేశ్‌లో మీ పోలీస్ సంబంధిత అన్ని ప్రశ్నలకు నేను సహాయం చేస్తాను.

నేను మీకు ఇవి సహాయం చేయగలను:
• 🔍 ఎఫ్‌ఐఆర్ స్థితి తనిఖీ
• 📊 నేర గణాంకాలు పొందడం
• 📝 ఫిర్యాదులు దాఖలు చేయడం
• 🚨 అత్యవసర సహాయం
• 🚦 ట్రాఫిక్ నియమాలు
• 📄 పోయిన పత్రాల విధానాలు
• 📞 పోలీస్ స్టేషన్ సంప్రదింపులు

ఈ రోజు మీకు ఏమి తెలుసుకోవాలి?`,
	}.Get(lang)
}

func helpText(lang models.Language) string {
	return models.Localized{
		EN: `I'm AP Police Buddy, your assistant for police services in Andhra Pradesh. Here's how I can help you:

🔍 **FIR Services:**
• Check FIR status: "What's the status of FIR/001/2024?"
• Learn how to file an FIR

📊 **Crime Information:**
• Get crime statistics: "Show me crimes in Guntur"
• Safety tips and alerts

📝 **Complaint Services:**
• File non-urgent complaints
• Track complaint status

🚨 **Emergency Help:**
• Get emergency contact numbers
• Immediate assistance guidance

🚦 **Traffic & Legal:**
• Traffic rules and regulations
• Document procedures

Just type your question - I understand both English and Telugu!`,
		TE: `నేను AP పోలీస్ బడ్డీ, ఆంధ్రప్రదేశ్‌లో పోలీస్ సేవలకు మీ సహాయకుడిని. నేను ఎలా సహాయం చేయగలను:

🔍 **ఎఫ్‌ఐఆర్ సేవలు:**
• ఎఫ్‌ఐఆర్ స్థితి తనిఖీ: "FIR/001/2024 స్థితి ఏమిటి?"
• ఎఫ్‌ఐఆర్ ఎలా దాఖలు చేయాలో తెలుసుకోండి

📊 **నేర సమాచారం:**
• నేర గణాంకాలు: "గుంటూర్‌లో నేరాలు చూపించు"
• భద్రతా చిట్కాలు మరియు హెచ్చరికలు

📝 **ఫిర్యాదు సేవలు:**
• అత్యవసరం కాని ఫిర్యాదులు దాఖలు చేయండి
• ఫిర్యాదు స్థితిని ట్రాక్ చేయండి

🚨 **అత్యవసర సహాయం:**
• అత్యవసర సంప్రదింపు నంబర్లు
• తక్షణ సహాయం మార్గదర్శకం

🚦 **ట్రాఫిక్ & చట్టపరమైన:**
• ట్రాఫిక్ నియమాలు
• పత్రాల విధానాలు

మీ ప్రశ్న టైప్ చేయండి - నేను ఇంగ్లీష్ మరియు తెలుగు రెండూ అర్థం చేసుకుంటాను!`,
	}.Get(lang)
}

func caseFoundText(lang models.Language, rec *models.CaseRecord) string {
	if lang == models.LangTelugu {
		return fmt.Sprintf(`మీ ఎఫ్‌ఐఆర్ దొరికింది! %s కోసం వివరాలు ఇవి:

📋 **ఎఫ్‌ఐఆర్ సమాచారం:**
• స్థితి: %s
• పోలీస్ స్టేషన్: %s
• పరిశోధన అధికారి: %s
• నేర రకం: %s
• స్థానం: %s
• నివేదించిన తేదీ: %s

ధృవీకరణ మరియు వివరమైన అప్‌డేట్‌ల కోసం, దయచేసి మీ నమోదిత ఫోన్ నంబర్ ఇవ్వండి. మీరు పోలీస్ స్టేషన్‌లో పరిశోధన అధికారిని నేరుగా కూడా సంప్రదించవచ్చు.`,
			rec.CaseNumber, rec.Status, rec.PoliceStation, rec.OfficerName, rec.CrimeType, rec.Location, rec.DateReported)
	}
	return fmt.Sprintf(`I found your FIR! Here are the details for %s:

📋 **FIR Information:**
• Status: %s
• Police Station: %s
• Investigating Officer: %s
• Crime Type: %s
• Location: %s
• Date Reported: %s

For verification and detailed updates, please provide your registered phone number. You can also contact the investigating officer directly at the police station.`,
		rec.CaseNumber, rec.Status, rec.PoliceStation, rec.OfficerName, rec.CrimeType, rec.Location, rec.DateReported)
}

func caseNotFoundText(lang models.Language, caseNumber, previousCase string) string {
	body := models.Localized{
		EN: fmt.Sprintf(`I couldn't find FIR number "%s" in our records. This could be because:

• The FIR number might be typed incorrectly
• The case might be from a different district
• The FIR might be very recent and not yet updated in the system

Please double-check the FIR number format (usually FIR/XXX/YYYY) and try again. If you're still having trouble, you can:
• Contact the police station where you filed the FIR
• Visit the station with your FIR copy
• Call the investigating officer directly`, caseNumber),
		TE: fmt.Sprintf(`మా రికార్డులలో "%s" ఎఫ్‌ఐఆర్ నంబర్ కనుగొనలేకపోయాను. ఇది ఈ కారణాలవల్ల కావచ్చు:

• ఎఫ్‌ఐఆర్ నంబర్ తప్పుగా టైప్ చేయబడి ఉండవచ్చు
• కేసు వేరే జిల్లాకు చెందినది కావచ్చు
• ఎఫ్‌ఐఆర్ చాలా ఇటీవలిది మరియు ఇంకా సిస్టమ్‌లో అప్‌డేట్ కాకపోవచ్చు

దయచేసి ఎఫ్‌ఐఆర్ నంబర్ ఫార్మాట్‌ను (సాధారణంగా FIR/XXX/YYYY) తనిఖీ చేసి మళ్లీ ప్రయత్నించండి. మీకు ఇంకా ఇబ్బంది అయితే, ఎఫ్‌ఐఆర్ దాఖలు చేసిన పోలీస్ స్టేషన్‌ను సంప్రదించండి.`, caseNumber),
	}.Get(lang)

	if previousCase != "" {
		body += models.Localized{
			EN: fmt.Sprintf("\n\nI notice you've previously inquired about FIR %s. If you're looking for that case instead, please let me know.", previousCase),
			TE: fmt.Sprintf("\n\nమీరు గతంలో ఎఫ్‌ఐఆర్ %s గురించి విచారించారని నేను గమనించాను. బదులుగా మీరు ఆ కేసు కోసం చూస్తున్నట్లయితే, దయచేసి నాకు తెలియజేయండి.", previousCase),
		}.Get(lang)
	}
	return body
}

func askCaseNumberText(lang models.Language) string {
	return models.Localized{
		EN: `I'd be happy to help you check your FIR status! To look up your case, I'll need your FIR number.

Please provide your FIR number in the format: **FIR/XXX/YYYY** (for example: FIR/001/2024)

You can find this number on:
• Your FIR copy receipt
• Any documents given by the police station
• SMS notifications sent to your registered mobile number

Once you provide the FIR number, I'll give you detailed information about your case status, investigating officer, and next steps.`,
		TE: `మీ ఎఫ్‌ఐఆర్ స్థితిని తనిఖీ చేయడంలో నేను సంతోషంగా సహాయం చేస్తాను! మీ కేసును చూడటానికి, నాకు మీ ఎఫ్‌ఐఆర్ నంబర్ అవసరం.

దయచేసి మీ ఎఫ్‌ఐఆర్ నంబర్‌ను ఈ ఫార్మాట్‌లో ఇవ్వండి: **FIR/XXX/YYYY** (ఉదాహరణ: FIR/001/2024)

మీరు ఈ నంబర్‌ను ఇక్కడ కనుగొనవచ్చు:
• మీ ఎఫ్‌ఐఆర్ కాపీ రసీదు
• పోలీస్ స్టేషన్ ఇచ్చిన ఏదైనా పత్రాలు
• మీ నమోదిత మొబైల్ నంబర్‌కు పంపిన SMS నోటిఫికేషన్లు

మీరు ఎఫ్‌ఐఆర్ నంబర్ ఇచ్చిన తర్వాత, మీ కేసు స్థితి, పరిశోధన అధికారి మరియు తదుపరి దశల గురించి వివరమైన సమాచారం ఇస్తాను.`,
	}.Get(lang)
}

func statsText(lang models.Language, location string, stats []models.CrimeStat) string {
	lines := make([]string, 0, len(stats))
	if lang == models.LangTelugu {
		for _, s := range stats {
			lines = append(lines, fmt.Sprintf("• %s: %d కేసులు", s.CrimeType, s.Count))
		}
		return fmt.Sprintf(`%s కోసం ఇటీవలి నేర గణాంకాలు ఇవి (గత 7 రోజులు):

📊 **నేర నివేదిక:**
%s

**భద్రతా సిఫార్సులు:**
%s

• అత్యవసర సంప్రదింపు: 100
• మహిళల హెల్ప్‌లైన్: 181
• సైబర్ క్రైమ్ హెల్ప్‌లైన్: 1930`,
			location, strings.Join(lines, "\n"), safetyTip(location).TE)
	}
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("• %s: %d cases", s.CrimeType, s.Count))
	}
	return fmt.Sprintf(`Here are the recent crime statistics for %s (Last 7 days):

📊 **Crime Report:**
%s

**Safety Recommendations:**
%s

• Emergency contact: 100
• Women's helpline: 181
• Cyber crime helpline: 1930`,
		location, strings.Join(lines, "\n"), safetyTip(location).EN)
}

// safetyTip gives the location-specific advisory; Guntur gets the parking
// theft warning, everywhere else the generic one.
func safetyTip(location string) models.Localized {
	if location == "Guntur" || location == "గుంటూర్" {
		return models.Localized{
			EN: "• Be cautious of theft in parking areas\n• Avoid leaving valuables unattended",
			TE: "• పార్కింగ్ ప్రాంతాలలో దొంగతనం పట్ల జాగ్రత్త వహించండి\n• విలువైన వస్తువులను గమనించకుండా వదలకండి",
		}
	}
	return models.Localized{
		EN: "• Stay alert in crowded areas\n• Report suspicious activities immediately",
		TE: "• రద్దీ ఉన్న ప్రాంతాలలో అప్రమత్తంగా ఉండండి\n• అనుమానాస్పద కార్యకలాపాలను వెంటనే నివేదించండి",
	}
}

func pickCityText(lang models.Language) string {
	return models.Localized{
		EN: `I can provide you with current crime statistics for various locations in Andhra Pradesh. Please specify a city or area you're interested in, such as:

🏙️ **Major Cities:**
• Guntur
• Vijayawada
• Tirupati
• Hyderabad
• Visakhapatnam

For example, you can ask:
• "Show me crime statistics for Guntur"
• "What's the safety situation in Vijayawada?"

Which location would you like information about?`,
		TE: `నేను ఆంధ్రప్రదేశ్‌లోని వివిధ ప్రాంతాలకు ప్రస్తుత నేర గణాంకాలను అందించగలను. దయచేసి మీకు ఆసక్తి ఉన్న నగరం లేదా ప్రాంతాన్ని పేర్కొనండి:

🏙️ **ప్రధాన నగరాలు:**
• గుంటూర్
• విజయవాడ
• తిరుపతి
• హైదరాబాద్
• విశాఖపట్నం

ఉదాహరణకు, మీరు అడగవచ్చు:
• "గుంటూర్ కోసం నేర గణాంకాలు చూపించు"
• "విజయవాడలో భద్రతా పరిస్థితి ఏమిటి?"

మీకు ఏ ప్రాంతం గురించి సమాచారం కావాలి?`,
	}.Get(lang)
}

func fileFIRText(lang models.Language) string {
	return models.Localized{
		EN: `I'll guide you through the process of filing an FIR (First Information Report) in Andhra Pradesh:

📝 **How to File an FIR:**

**Step 1: Visit the Police Station**
• Go to the police station in whose jurisdiction the crime occurred
• You can file an FIR 24/7 - police stations never close
• Bring a valid ID proof

**Step 2: Provide Complete Information**
• Date, time, and exact location of the incident
• Detailed description of what happened
• Names and descriptions of accused persons (if known)
• List of witnesses (if any)

**Step 3: Get Your FIR Copy**
• Police must give you a copy with the FIR number
• Keep this copy safe - you'll need it for follow-ups

**Step 4: Follow Up**
• Contact the investigating officer for updates

**🚨 Important Notes:**
• Filing a false FIR is a punishable offense
• FIR is free of cost
• Police cannot refuse to register an FIR for cognizable offenses

**Emergency:** For urgent cases, call 100 immediately.`,
		TE: `ఆంధ్రప్రదేశ్‌లో ఎఫ్‌ఐఆర్ (మొదటి సమాచార నివేదిక) దాఖలు చేసే ప్రక్రియను నేను మీకు వివరిస్తాను:

📝 **ఎఫ్‌ఐఆర్ ఎలా దాఖలు చేయాలి:**

**దశ 1: పోలీస్ స్టేషన్‌ను సందర్శించండి**
• నేరం జరిగిన అధికార పరిధిలోని పోలీస్ స్టేషన్‌కు వెళ్లండి
• మీరు 24/7 ఎఫ్‌ఐఆర్ దాఖలు చేయవచ్చు
• చెల్లుబాటు అయ్యే గుర్తింపు రుజువు తీసుకెళ్లండి

**దశ 2: పూర్తి సమాచారం అందించండి**
• సంఘటన తేదీ, సమయం మరియు ఖచ్చితమైన స్థానం
• ఏమి జరిగిందో వివరమైన వర్ణన
• నిందితుల పేర్లు మరియు వర్ణనలు (తెలిస్తే)
• సాక్షుల జాబితా (ఏదైనా ఉంటే)

**దశ 3: మీ ఎఫ్‌ఐఆర్ కాపీ పొందండి**
• పోలీస్ మీకు ఎఫ్‌ఐఆర్ నంబర్‌తో కాపీ ఇవ్వాలి
• ఈ కాపీని సురక్షితంగా ఉంచండి

**దశ 4: ఫాలో అప్ చేయండి**
• అప్‌డేట్‌ల కోసం పరిశోధన అధికారిని సంప్రదించండి

**🚨 ముఖ్యమైన గమనికలు:**
• తప్పుడు ఎఫ్‌ఐఆర్ దాఖలు చేయడం శిక్షార్హమైన నేరం
• ఎఫ్‌ఐఆర్ ఉచితం
• కాగ్నిజబుల్ నేరాలకు ఎఫ్‌ఐఆర్ నమోదు చేయడానికి పోలీస్ నిరాకరించలేరు

**అత్యవసరం:** అత్యవసర కేసుల కోసం, వెంటనే 100కు కాల్ చేయండి.`,
	}.Get(lang)
}

func emergencyText(lang models.Language) string {
	return models.Localized{
		EN: `🚨 **EMERGENCY ASSISTANCE**

**Immediate Help - Call Now:**
• **Police Emergency: 100**
• **Fire Department: 101**
• **Medical Emergency: 108**
• **Women's Helpline: 181**
• **Child Helpline: 1098**

**For immediate police assistance:**
1. **Call 100** - This is the fastest way to get help
2. **Stay calm and speak clearly**
3. **Provide your exact location**
4. **Describe the emergency briefly**

**Cyber Crime Emergency: 1930**
**National Emergency: 112**

Are you currently in an emergency situation? If so, please call 100 immediately.`,
		TE: `🚨 **అత్యవసర సహాయం**

**తక్షణ సహాయం - ఇప్పుడే కాల్ చేయండి:**
• **పోలీస్ అత్యవసరం: 100**
• **అగ్నిమాపక విభాగం: 101**
• **వైద్య అత్యవసరం: 108**
• **మహిళల హెల్ప్‌లైన్: 181**
• **పిల్లల హెల్ప్‌లైన్: 1098**

**తక్షణ పోలీస్ సహాయం కోసం:**
1. **100కు కాల్ చేయండి** - ఇది సహాయం పొందడానికి వేగవంతమైన మార్గం
2. **ప్రశాంతంగా ఉండి స్పష్టంగా మాట్లాడండి**
3. **మీ ఖచ్చితమైన స్థానాన్ని అందించండి**
4. **అత్యవసర పరిస్థితిని క్లుప్తంగా వివరించండి**

**సైబర్ క్రైమ్ అత్యవసరం: 1930**
**జాతీయ అత్యవసరం: 112**

మీరు ప్రస్తుతం అత్యవసర పరిస్థితిలో ఉన్నారా? అలా అయితే, దయచేసి వెంటనే 100కు కాల్ చేయండి.`,
	}.Get(lang)
}

func policeContactText(lang models.Language) string {
	return models.Localized{
		EN: `📞 **Police Station Contacts & Information**

**Major Police Stations in Andhra Pradesh:**

🏢 **Guntur District:**
• Guntur City Police Station: 0863-2323100
• Guntur Rural Police Station: 0863-2323200

🏢 **Krishna District:**
• Vijayawada Central Police Station: 0866-2470100

🏢 **Chittoor District:**
• Tirupati Police Station: 0877-2287100

**🚨 Emergency Numbers (24/7):**
• Police Emergency: **100**
• Cyber Crime: **1930**
• Women's Helpline: **181**

**📱 How to Find Your Nearest Police Station:**
1. Call 100 and ask for the nearest station
2. Visit www.appolice.gov.in

Which specific area do you need police station information for?`,
		TE: `📞 **పోలీస్ స్టేషన్ సంప్రదింపులు & సమాచారం**

**ఆంధ్రప్రదేశ్‌లోని ప్రధాన పోలీస్ స్టేషన్లు:**

🏢 **గుంటూర్ జిల్లా:**
• గుంటూర్ సిటీ పోలీస్ స్టేషన్: 0863-2323100
• గుంటూర్ రూరల్ పోలీస్ స్టేషన్: 0863-2323200

🏢 **కృష్ణా జిల్లా:**
• విజయవాడ సెంట్రల్ పోలీస్ స్టేషన్: 0866-2470100

🏢 **చిత్తూర్ జిల్లా:**
• తిరుపతి పోలీస్ స్టేషన్: 0877-2287100

**🚨 అత్యవసర నంబర్లు (24/7):**
• పోలీస్ అత్యవసరం: **100**
• సైబర్ క్రైమ్: **1930**
• మహిళల హెల్ప్‌లైన్: **181**

**📱 మీ సమీప పోలీస్ స్టేషన్‌ను ఎలా కనుగొనాలి:**
1. 100కు కాల్ చేసి సమీప స్టేషన్‌ను అడగండి
2. www.appolice.gov.in సందర్శించండి

మీకు ఏ నిర్దిష్ట ప్రాంతానికి పోలీస్ స్టేషన్ సమాచారం అవసరం?`,
	}.Get(lang)
}

func defaultText(lang models.Language) string {
	return models.Localized{
		EN: `I understand you're looking for assistance with police services. I'm here to help you with a wide range of police-related queries in Andhra Pradesh.

Here are some things you can ask me about:

🔍 **Case Information:**
• "Check status of FIR/001/2024"

📊 **Safety & Crime Data:**
• "Show me recent crimes in my area"

📝 **Procedures & Guidance:**
• "How do I file a complaint?"
• "I lost my license, what should I do?"

📞 **Contact Information:**
• "Police station near me"

You can ask your questions naturally - I understand both English and Telugu.

What specific information are you looking for today?`,
		TE: `మీరు పోలీస్ సేవలతో సహాయం అన్వేషిస్తున్నారని నేను అర్థం చేసుకున్నాను. ఆంధ్రప్రదేశ్‌లో పోలీస్ సంబంధిత విస్తృత శ్రేణి ప్రశ్నలతో నేను మీకు సహాయం చేయడానికి ఇక్కడ ఉన్నాను.

మీరు నన్ను ఇవి అడగవచ్చు:

🔍 **కేసు సమాచారం:**
• "FIR/001/2024 స్థితి తనిఖీ చేయండి"

📊 **భద్రత & నేర డేటా:**
• "నా ప్రాంతంలో ఇటీవలి నేరాలు చూపించు"

📝 **విధానాలు & మార్గదర్శకత్వం:**
• "ఫిర్యాదు ఎలా దాఖలు చేయాలి?"
• "నేను నా లైసెన్స్ పోగొట్టుకున్నాను, ఏమి చేయాలి?"

📞 **సంప్రదింపు సమాచారం:**
• "నా దగ్గర పోలీస్ స్టేషన్"

మీరు మీ ప్రశ్నలను సహజంగా అడగవచ్చు - నేను ఇంగ్లీష్ మరియు తెలుగు రెండూ అర్థం చేసుకుంటాను.

ఈ రోజు మీరు ఏ నిర్దిష్ట సమాచారం కోసం చూస్తున్నారు?`,
	}.Get(lang)
}

// ApologyText is the fixed fallback served when composition fails for any
// reason. It always suggests the emergency line.
func ApologyText(lang models.Language) string {
	return models.Localized{
		EN: `I'm sorry, something went wrong while answering your question. Please try again in a moment.

If this is urgent, call the Police Emergency line **100** right away.`,
		TE: `క్షమించండి, మీ ప్రశ్నకు సమాధానం ఇచ్చేటప్పుడు ఏదో తప్పు జరిగింది. దయచేసి కాసేపటి తర్వాత మళ్లీ ప్రయత్నించండి.

ఇది అత్యవసరమైతే, వెంటనే పోలీస్ అత్యవసర లైన్ **100**కు కాల్ చేయండి.`,
	}.Get(lang)
}
