package seed

import (
	"github.com/leadforge/leadctl/internal/models"
)

// catalog is the category-specific outreach template set. Initial messages
// are per-category; follow-ups and the English generic apply to any category.
var catalog = []models.MessageTemplate{
	{
		Name:     "Dentist - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Category: "dentist",
		Content: "Pershendetje 👋\n\n" +
			"Pashe {business_name} ne Google - {rating}⭐ shkelqyeshem!\n" +
			"Urime per kaq shume paciente te kenaqur 👏\n\n" +
			"Pyetje e shpejte: A po humbni paciente sepse nuk mund te rezervojne online?\n\n" +
			"Shumica e dentisteve me thone se po humbin rezervime pas orarit. " +
			"Dikush do te rezervoje ne oren 21:00 - nuk mundet, shkon te konkurrenti.\n\n" +
			"Une ndihmoj klinikat dentare te shtojne rezervime online.\n" +
			"Zakonisht dentistet shohin 10-15 rezervime te reja/muaj vetem nga rezervimet online.\n\n" +
			"A do te flisnit 5 minuta per kete?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Restaurant - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Category: "restaurant",
		Content: "Pershendetje 👋\n\n" +
			"Kontrollova {business_name} ne Google - {rating}⭐ dhe komentet duken shkelqyeshem!\n" +
			"Ushqimi duhet te jete i shijshem 🍽️\n\n" +
			"Pyetje: A po humbni kliente sepse nuk mund te gjejne menune online?\n\n" +
			"Ja cfare ndodh: Dikush kerkon \"restorant {city}\" ne Google, ju gjen, klikon... " +
			"dhe ska menu, ska mundesi te porosise. Iken.\n\n" +
			"Restorantet me menu online + porosi shohin 20-30% me shume te ardhura.\n\n" +
			"A do te flisnit shkurt per kete?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Salon - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Category: "salon",
		Content: "Pershendetje 👋\n\n" +
			"Pashe {business_name} ne Google - {rating}⭐, po beni shkelqyeshem!\n" +
			"Shume kliente te kenaqur 💇‍♀️\n\n" +
			"Pyetje e shpejte: Sa kohe kaloni cdo dite duke u pergjigjur telefonatave per rezervime?\n\n" +
			"Shumica e salloneve me thone 1-2 ore/dite ne telefon.\n" +
			"Me nje sistem rezervimi online, kjo bie ne 15 minuta - dhe merrni ME SHUME rezervime.\n\n" +
			"Plus, klientet pelqejne te rezervojne ne mengjes pa telefonuar gjate oreve tuaja te ngarkuara.\n\n" +
			"A jeni te interesuar per nje bisede 5-minuteshe?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Barber - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Category: "barber",
		Content: "Pershendetje 👋\n\n" +
			"Pashe {business_name} ne Google - {rating}⭐, shkelqyeshem!\n" +
			"Shume kliente te kenaqur 💈\n\n" +
			"Pyetje: Sa telefonata rezervimi merrni pas orarit te punes?\n\n" +
			"Me nje sistem rezervimi online, klientet mund te rezervojne 24/7 - edhe ne mengjes.\n" +
			"Barberet qe perdorin kete zakonisht marrin 15-20 rezervime me shume/muaj.\n\n" +
			"A do te flisnit 5 minuta?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Lawyer - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Category: "lawyer",
		Content: "Pershendetje 👋\n\n" +
			"Gjeta {business_name} - {rating}⭐ me komente solide.\n\n" +
			"Vezhgim i shpejte: Kur dikush ne {city} kerkon \"avokat divorci\" ose \"avokat biznesi\", " +
			"a dilni ne faqen e pare te Google?\n\n" +
			"Shumica e avokateve me thone \"jo vertet\" ose \"jo gjithmone\".\n\n" +
			"Ky eshte problem sepse 80% e njerezve nuk kalojne faqen 1 te Google.\n" +
			"Pra po humbni kliente qe jane duke kerkuar PIKËRISHT per JU.\n\n" +
			"Une ndihmoj firmat ligjore te kene dukshmeri me te mire ne Google.\n" +
			"Avokatet me te cilet punoj zakonisht marrin 2-4 kerkesa te reja/muaj vetem nga dukshmeria ne Google.\n\n" +
			"A do te flisnit 5 minuta per kete?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Car Repair - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Category: "car repair",
		Content: "Pershendetje 👋\n\n" +
			"Pashe {business_name} ne Google - {rating}⭐, qartazi i besueshem nga klientet tuaj!\n\n" +
			"Pyetje: Sa kliente humbni sepse nuk mund te rezervojne riparim online?\n\n" +
			"Ja cfare dua te them: Makina e dikujt prishet, kerkon \"riparim makine afer {city}\", " +
			"ju gjen, do te rezervoje... por duhet te telefonoje ose te vije personalisht.\n" +
			"Shume thjesht zgjedhin cilin mund ta kontaktojne me lehte.\n\n" +
			"Auto-serviset me rezervim online zakonisht shohin 15-20 rezervime me shume/muaj.\n\n" +
			"A jeni te interesuar te flisni 5 minuta per shtimin e kesaj?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Gym - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Category: "gym",
		Content: "Pershendetje 👋\n\n" +
			"Kontrollova {business_name} ne Google - {rating}⭐ duket shkelqyeshem!\n\n" +
			"Pyetje e shpejte: Sa e lehte eshte per dikë te regjistrohet per anetaresim online?\n\n" +
			"Shumica e palestrave me thone: \"Duhet te vijne personalisht\" ose \"Na telefononi per te filluar.\"\n\n" +
			"Kjo po ju humb anetare. Njerezit duan te regjistrohen ne oren 23:00 nga telefoni i tyre.\n\n" +
			"Palestrat me anetaresim online + sistem pagese zakonisht shohin 30-40% me shume regjistrime.\n\n" +
			"Te interesuar per nje bisede te shpejte?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Follow-up Day 1 (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Content: "Pershendetje 👋\n\n" +
			"Po ndjek mesazhin tim per {business_name}.\n\n" +
			"Pa presion - thjesht doja te shoh nese jeni te interesuar te flisni?\n\n" +
			"Gjithe te mirat!",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Follow-up Day 2 - Reframe (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Content: "Pershendetje,\n\n" +
			"Pyetje e shpejte: Sa kliente humbni sepse nuk mund t'ju gjejne online?\n\n" +
			"Ndoshta shume pa e ditur.\n\n" +
			"Nje uebsajt i thjeshte e zgjidh kete.\n\n" +
			"Te flasim?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Follow-up Day 3 - Portfolio (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Content: "Pershendetje,\n\n" +
			"Doja t'ju tregoj dicka.\n\n" +
			"Muajin e kaluar ndertova nje uebsajt per nje biznes te ngjashem me tuajin.\n\n" +
			"Rezultati: 15 kliente te rinj ate muaj qe nuk do t'i kishin marre.\n\n" +
			"Nese doni te njejten per {business_name}, mund ta bej brenda 5-7 diteve.\n\n" +
			"Te interesuar?",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Follow-up Day 5 - Final (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Language: "sq",
		Content: "Pershendetje,\n\n" +
			"Ky eshte mesazhi im i fundit.\n\n" +
			"Nese ndonjehere vendosni qe doni ndihme me nje uebsajt per {business_name}, " +
			"dini ku te me gjeni.\n\n" +
			"Ju uroj sukses! 🙏",
		Variant:  "A",
		IsActive: true,
	},
	{
		Name:     "Generic - Initial (English)",
		Channel:  models.ChannelWhatsApp,
		Language: "en",
		Content: "Hi 👋\n\n" +
			"I came across {business_name} on Google - {rating}⭐ is impressive!\n" +
			"Congrats on having so many satisfied customers 👏\n\n" +
			"Quick question: Are you losing customers because they can't find you online?\n\n" +
			"I help local businesses get simple, professional websites that bring more customers.\n\n" +
			"Would you be open to a quick 5-min chat?",
		Variant:  "A",
		IsActive: true,
	},
}
