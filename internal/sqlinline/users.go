package sqlinline

const profileColumns = `id, email, name, role, tier, questions_answered, experiments_created,
    joined_at, summary, summary_date, last_login_date, daily_logins, answers,
    password_hash, country, created_at, updated_at`

const QSelectProfileByEmail = `--sql 74139418-30f7-4267-866e-432530598aa1
select ` + profileColumns + `
from users
where lower(email) = lower($1::text)
limit 1;
`

const QSelectProfileByID = `--sql 0182a81f-3fcd-4617-91e1-516301048d30
select ` + profileColumns + `
from users
where id = $1::uuid
limit 1;
`

const QInsertProfile = `--sql e71af02f-025c-4078-940e-d79ce3d29605
insert into users (id, email, name, role, tier, questions_answered, experiments_created,
    joined_at, last_login_date, daily_logins, answers, password_hash, country,
    created_at, updated_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, 0, 0,
    now(), $6::text, $7::jsonb, '[]'::jsonb, $8::text, $9::text, now(), now());
`

const QUpdateProfile = `--sql a39af33f-39f7-4a15-86f2-bb2b3f3a4217
update users
set name = $2::text,
    role = $3::text,
    tier = $4::text,
    questions_answered = $5::int,
    experiments_created = $6::int,
    summary = $7::text,
    summary_date = $8::timestamptz,
    last_login_date = $9::text,
    daily_logins = $10::jsonb,
    answers = $11::jsonb,
    country = $12::text,
    updated_at = now()
where id = $1::uuid;
`

const QUpdateProfileTier = `--sql cbe7584a-8e49-4fb1-984c-b34587145e7d
update users
set tier = $2::text,
    updated_at = now()
where id = $1::uuid;
`

const QListProfiles = `--sql a90b0cec-9921-480a-8f0f-c28c5a4de8b2
select ` + profileColumns + `
from users
order by created_at desc;
`
