package sqlinline

const QStatsSummary = `--sql 09588449-ae21-46d3-b186-6042c11a5d22
select
  count(*) as total_users,
  count(*) filter (where tier <> 'free') as paid_users,
  count(*) filter (where summary is not null and summary <> '') as summaries_generated,
  count(*) filter (where created_at >= now() - interval '24 hours') as signups_last24,
  count(*) filter (where summary_date >= now() - interval '24 hours') as summaries_last24
from users;
`

const QDigestCounts = `--sql 2d2522fe-f1cc-4b87-9801-20d6a0d43b0f
select
  count(*) filter (where created_at >= now() - interval '24 hours') as signups_last24,
  count(*) filter (where summary_date >= now() - interval '24 hours') as summaries_last24,
  count(*) filter (where tier <> 'free' and updated_at >= now() - interval '24 hours') as upgrades_last24
from users;
`
