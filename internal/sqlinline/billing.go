package sqlinline

const QInsertCheckoutIntent = `--sql f206f4c4-ed87-42a2-80f3-debb649e4c97
insert into checkout_intents (session_id, user_id, price_id, tier, status, country, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::text, 'pending', $5::text, now(), now());
`

const QSelectCheckoutIntent = `--sql 313ba7d6-a5ea-4ad2-bca9-bfb73aded278
select session_id, user_id, price_id, tier, status, country, created_at, updated_at
from checkout_intents
where session_id = $1::text
limit 1;
`

const QMarkCheckoutIntent = `--sql 140c2988-3460-46ae-908c-15e6eb043811
update checkout_intents
set status = $2::text,
    updated_at = now()
where session_id = $1::text;
`

const QInsertWebhookEvent = `--sql 941c16bf-bbd9-481d-a46b-caa6210b738c
insert into webhook_events (id, type, session_id, received_at)
values ($1::text, $2::text, $3::text, now())
on conflict (id) do nothing;
`
