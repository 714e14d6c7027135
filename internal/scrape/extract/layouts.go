package extract

// Selectors for the HTML career pages. They follow the markup the sites served when written;
// a redesign shows up as an empty sheet, not an error.

var mclaren = cardLayout{
	name: "mclaren",
	base: "https://racingcareers.mclaren.com/",
	item: "article.job-result, li.job-result",
	fields: []field{
		{header: "Title", sel: ".job-title, h3"},
		{header: "Department", sel: ".job-department, .department"},
		{header: locationHeader, sel: ".job-location"},
		{header: "Link", sel: "a[href]", attr: "href"},
	},
}

// SuccessFactors career site.
var ferrari = cardLayout{
	name: "ferrari",
	base: "https://jobs.ferrari.com/",
	item: "tr.data-row",
	fields: []field{
		{header: "Title", sel: "a.jobTitle-link"},
		{header: locationHeader, sel: "span.jobLocation"},
		{header: "Date", sel: "span.jobDate"},
		{header: "Link", sel: "a.jobTitle-link", attr: "href"},
	},
}

var mercedes = cardLayout{
	name: "mercedes",
	base: "https://www.mercedesamgf1.com/",
	item: ".vacancy-card, .vacancies__item",
	fields: []field{
		{header: "Title", sel: ".vacancy-card__title, h3"},
		{header: "Department", sel: ".vacancy-card__department"},
		{header: locationHeader, sel: ".vacancy-card__location"},
		{header: "Link", sel: "a[href]", attr: "href"},
	},
}

var redBullRacing = cardLayout{
	name: "red_bull_racing",
	base: "https://www.redbullracing.com/",
	item: ".careers-listing__item, .job-listing-card",
	fields: []field{
		{header: "Title", sel: ".careers-listing__title, h3"},
		{header: "Team", sel: ".careers-listing__team"},
		{header: locationHeader, sel: ".careers-listing__location"},
		{header: "Link", sel: "a[href]", attr: "href"},
	},
}

// Teamtailor board.
var williams = cardLayout{
	name: "williams",
	base: "https://careers.williamsf1.com/",
	item: "ul#jobs_list_container > li",
	fields: []field{
		{header: "Title", sel: "span.text-block-base-link"},
		{header: "Department", sel: "div.mt-1 > span:first-child"},
		{header: locationHeader, sel: "div.mt-1 > span:nth-child(3)"},
		{header: "Link", sel: "a[href*='/jobs/']", attr: "href"},
	},
}

var astonMartin = cardLayout{
	name: "aston_martin",
	base: "https://www.astonmartinf1.com/",
	item: ".job-listing, .careers-list__item",
	fields: []field{
		{header: "Title", sel: ".job-listing__title, h3"},
		{header: "Department", sel: ".job-listing__department"},
		{header: locationHeader, sel: ".job-listing__location"},
		{header: "Contract", sel: ".job-listing__contract"},
		{header: "Link", sel: "a[href]", attr: "href"},
	},
}

var kickSauber = cardLayout{
	name: "kick_sauber",
	base: "https://www.sauber-group.com/",
	item: ".career-item",
	fields: []field{
		{header: "Title", sel: "h3, .career-item__title"},
		{header: "Department", sel: ".career-item__department"},
		{header: "Link", sel: "a[href]", attr: "href"},
	},
}

var cadillac = cardLayout{
	name: "cadillac",
	base: "https://opportunities.cadillacf1team.com/",
	item: "[data-job], .job-card, li.opportunity",
	fields: []field{
		{header: "Title", sel: ".job-card__title, h2, h3"},
		{header: "Department", sel: ".job-card__department, .department"},
		{header: locationHeader, sel: ".job-card__location"},
		{header: "Link", sel: "a[href]", attr: "href"},
	},
}
