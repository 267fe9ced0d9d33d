package main

// Sample is one text sent to /api/summarize.
type Sample struct {
	Name string
	Text string
}

// Samples grow in length so latency can be compared against input size.
var Samples = []Sample{
	{
		Name: "fox",
		Text: "The quick brown fox jumps over the lazy dog while the farmer watches from the porch and wonders why the dog never chases anything anymore.",
	},
	{
		Name: "note",
		Text: "Reminder: the office will be closed on Monday for the public holiday. Badges will not work over the weekend, so take anything you need home on Friday. The cleaning crew will be in on Sunday afternoon.",
	},
	{
		Name: "update",
		Text: `Hi all,

Quick status on the search migration. The new index has been live for three days and query latency dropped from around 450ms to 280ms at the 95th percentile. Two customers reported missing results for queries with accented characters; the analyzer config did not include the ASCII folding filter. A fix is in review and should ship tomorrow morning.

We also found that the nightly reindex job takes almost four hours now, up from ninety minutes, because it no longer batches writes. I will pair with Dana on Thursday to bring that back down.

Thanks,
Priya`,
	},
	{
		Name: "article",
		Text: `Community gardens have spread quickly across mid-sized cities over the last decade, and a new survey of 40 municipalities suggests the trend is more than a passing fashion. Researchers found that neighborhoods with at least one shared garden reported higher rates of contact between neighbors, lower turnover among renters, and a measurable increase in fresh vegetable consumption among households within a ten-minute walk.

The gardens are not without problems. Roughly a third of the sites surveyed had waiting lists longer than two years, and several city officials described ongoing disputes over water costs and plot allocation. In older districts, soil contamination from decades of industrial use forced organizers to build raised beds at considerable expense, sometimes funded by local businesses in exchange for signage.

Funding models vary widely. Some cities cover water and insurance while volunteers handle everything else; others employ a part-time coordinator per site. The survey found no clear link between funding model and long-term survival, but gardens with a paid coordinator were more likely to run educational programs for schools.

The authors recommend that cities treat gardens as part of their parks network rather than as temporary uses of vacant land. Sites that had been granted leases of ten years or more were far more likely to invest in permanent infrastructure such as tool sheds, compost systems, and accessible paths. Short leases, by contrast, discouraged volunteers from committing time to projects that might be bulldozed when the land was sold.`,
	},
	{
		Name: "report",
		Text: `Subject: Post-incident review, checkout outage on March 3rd

Summary
Between 10:12 and 11:40 UTC the checkout service returned errors for roughly 60% of payment attempts. The trigger was a configuration change that lowered the connection pool size for the payments database from 50 to 5 as part of a cost review. Under normal weekday load the pool was exhausted within minutes, and requests queued until they hit the 30 second gateway timeout.

Timeline
- 09:55 Configuration change merged and rolled out by the deploy pipeline.
- 10:12 Error rate on /checkout crosses 5%. No alert fires because the threshold is 10% sustained for 15 minutes.
- 10:31 Support escalates customer reports to the on-call engineer.
- 10:48 On-call identifies pool exhaustion from database client metrics.
- 11:05 Rollback started. The pipeline requires a full build, which takes 25 minutes.
- 11:40 Error rate returns to baseline.

Impact
About 4,100 orders failed. Most customers retried successfully within the hour, but finance estimates 700 orders were abandoned entirely. Support handled 260 tickets.

What went well
Database client metrics made the root cause obvious once someone looked at them. The rollback itself worked without manual steps.

What went poorly
The alert threshold was too lax to catch a partial outage. The cost review change was reviewed by someone unfamiliar with the checkout traffic profile. Rollbacks go through the same slow build path as forward deploys.

Action items
1. Lower the checkout error alert to 3% sustained for 3 minutes.
2. Add a pool saturation alert on every service that talks to the payments database.
3. Require a checkout owner to approve changes under config/payments.
4. Allow rollbacks to redeploy the previous image without rebuilding.
5. Add a load test stage that runs with production pool settings before rollout.

A blameless review meeting is scheduled for Friday. Please add questions to the shared document beforehand.`,
	},
}

// QualitySamples check that summaries stay short and keep the key facts.
// Used by --quality mode to compare providers side by side.
var QualitySamples = []Sample{
	{
		Name: "news",
		Text: "The city council voted 7 to 2 on Tuesday to approve a new bike lane network covering the downtown core. Construction starts in March and is expected to finish before the end of the year. Opponents argued the plan removes too much street parking, while supporters pointed to a 30 percent rise in cycling commuters since 2020.",
	},
	{
		Name: "technical",
		Text: "After investigating the incident, we determined that the root cause was a race condition in the authentication middleware which was affecting all requests that relied on the session cache. The fix involves implementing a mutex lock around the shared state, which prevents concurrent writes from corrupting the token store.",
	},
	{
		Name: "meeting",
		Text: "So basically what happened is that the client called us yesterday and they were pretty upset about the delay and they said that if we don't deliver by end of month they will cancel the contract which would be really bad for us because this is one of our biggest accounts and we already spent a lot of resources on this project so I think we need to have an emergency meeting to figure out how to speed things up.",
	},
	{
		Name: "academic",
		Text: "The research team has been working on this problem for several months and has produced preliminary results that are consistent with our hypothesis. However, the sample size is too small to draw definitive conclusions. We recommend expanding the study to include participants from different demographics, as the current sample consists mostly of college students who may not be representative of the general population.",
	},
	{
		Name: "list",
		Text: "Release checklist for Friday: freeze the main branch at noon, run the full regression suite, update the changelog, tag the release, deploy to staging, run smoke tests, then deploy to production after 4pm only if staging has been green for two hours.",
	},
}
